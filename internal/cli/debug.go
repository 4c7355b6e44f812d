package cli

import (
	"path/filepath"

	"github.com/julianstephens/mindcare/internal/constants"
)

type DebugCmd struct {
	Paths     *DebugPathsCmd     `cmd:"" help:"Show config, log and rules paths."`
	DumpHabit *DebugDumpHabitCmd `cmd:"" help:"Dump habit data as JSON."`
	DumpMood  *DebugDumpMoodCmd  `cmd:"" help:"Dump the mood log and its statistics as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	rules := ctx.RulesPath
	if rules == "" {
		rules = "(built-in)"
	}

	// Output in machine-readable format
	return ctx.printJSON(map[string]string{
		"config_dir": ctx.ConfigDir,
		"log_file":   filepath.Join(ctx.ConfigDir, "logs", constants.AppName+".log"),
		"rules":      rules,
	})
}

type DebugDumpHabitCmd struct {
	ID string `arg:"" help:"ID of the habit to dump."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	habit, err := ctx.Ledger.Get(cmd.ID)
	if err != nil {
		return err
	}
	return ctx.printJSON(habit)
}

type DebugDumpMoodCmd struct{}

func (cmd *DebugDumpMoodCmd) Run(ctx *Context) error {
	dump := struct {
		Entries any `json:"entries"`
		Stats   any `json:"stats,omitempty"`
	}{Entries: ctx.Mood.Entries()}

	if stats, err := ctx.Mood.Stats(); err == nil {
		dump.Stats = stats
	}
	return ctx.printJSON(dump)
}
