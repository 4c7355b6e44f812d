package companion

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/models"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// DefaultReply is returned when no rule matches
type DefaultReply struct {
	Reply    string          `yaml:"reply"`
	Category models.Category `yaml:"category"`
}

// RuleSet is the data-driven configuration behind the classifier
type RuleSet struct {
	Greeting     string                `yaml:"greeting"`
	Default      DefaultReply          `yaml:"default"`
	Rules        []models.ResponseRule `yaml:"rules"`
	QuickPrompts []string              `yaml:"quick_prompts"`
}

// DefaultRuleSet returns the built-in rule table
func DefaultRuleSet() *RuleSet {
	rs, err := decodeRules(bytes.NewReader(defaultRulesYAML))
	if err != nil {
		// The embedded table is covered by tests; failing here is a build defect.
		panic(fmt.Sprintf("embedded rules are invalid: %v", err))
	}
	return rs
}

// LoadRules parses a YAML rule table. Greeting, default reply and quick prompts
// that the document leaves out are taken from the built-in table.
func LoadRules(r io.Reader) (*RuleSet, error) {
	rs, err := decodeRules(r)
	if err != nil {
		return nil, err
	}

	builtin := DefaultRuleSet()
	if rs.Greeting == "" {
		rs.Greeting = builtin.Greeting
	}
	if rs.Default.Reply == "" {
		rs.Default = builtin.Default
	}
	if len(rs.QuickPrompts) == 0 {
		rs.QuickPrompts = builtin.QuickPrompts
	}
	if len(rs.Rules) == 0 {
		logger.Warn("Rule table has no rules; every message will get the default reply")
	}
	return rs, nil
}

// LoadRulesFile reads a YAML rule table from path
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()

	rs, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Loaded response rules", "path", path, "rules", len(rs.Rules))
	return rs, nil
}

func decodeRules(r io.Reader) (*RuleSet, error) {
	var rs RuleSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("rules document is empty")
		}
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	rs.normalize()
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// normalize lower-cases and trims keywords so matching can compare directly
// against the lower-cased message.
func (rs *RuleSet) normalize() {
	rs.Greeting = strings.TrimSpace(rs.Greeting)
	rs.Default.Reply = strings.TrimSpace(rs.Default.Reply)
	if rs.Default.Category == "" {
		rs.Default.Category = models.CategorySupport
	}
	for i := range rs.Rules {
		rule := &rs.Rules[i]
		rule.Reply = strings.TrimSpace(rule.Reply)
		for j, kw := range rule.Keywords {
			rule.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
}

// Validate checks every rule and the default reply
func (rs *RuleSet) Validate() error {
	for i := range rs.Rules {
		if err := rs.Rules[i].Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i+1, err)
		}
	}
	if rs.Default.Reply != "" && !rs.Default.Category.IsValid() {
		return fmt.Errorf("default reply: unknown category %q", rs.Default.Category)
	}
	return nil
}

// DefaultRulesYAML returns the built-in rule table as YAML, e.g. to scaffold a
// user-editable copy
func DefaultRulesYAML() []byte {
	return bytes.Clone(defaultRulesYAML)
}
