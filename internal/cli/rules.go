package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/mindcare/internal/companion"
)

type RulesCmd struct {
	Check RulesCheckCmd `cmd:"" help:"Validate a response rule file."`
	Show  RulesShowCmd  `cmd:"" help:"Print the active rule table as YAML." default:"1"`
	Test  RulesTestCmd  `cmd:"" help:"Show which rule a message matches, without the typing delay."`
}

type RulesCheckCmd struct {
	File string `arg:"" help:"Path to a YAML rule file." type:"existingfile"`
}

func (c *RulesCheckCmd) Run(ctx *Context) error {
	rs, err := companion.LoadRulesFile(c.File)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "✓ %s: %d rules, %d quick prompts\n", c.File, len(rs.Rules), len(rs.QuickPrompts))
	return nil
}

type RulesShowCmd struct{}

func (c *RulesShowCmd) Run(ctx *Context) error {
	rs := ctx.Rules
	if rs == nil {
		rs = companion.DefaultRuleSet()
	}

	enc := yaml.NewEncoder(ctx.out())
	enc.SetIndent(2)
	if err := enc.Encode(rs); err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	return enc.Close()
}

type RulesTestCmd struct {
	Text string `arg:"" help:"Message to classify."`
}

func (c *RulesTestCmd) Run(ctx *Context) error {
	reply, err := ctx.Classifier.Classify(c.Text)
	if err != nil {
		return err
	}
	return ctx.printJSON(reply)
}
