package main

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/mindcare/internal/cli"
	"github.com/julianstephens/mindcare/internal/companion"
	"github.com/julianstephens/mindcare/internal/constants"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/mood"
	"github.com/julianstephens/mindcare/internal/sample"
)

var CLI struct {
	Version      kong.VersionFlag
	Debug        bool          `help:"Enable debug logging." env:"MINDCARE_DEBUG"`
	ConfigDir    string        `help:"Directory for logs and the rules file." type:"path" default:"${config_dir}" env:"MINDCARE_CONFIG_DIR"`
	RulesFile    string        `name:"rules" help:"YAML response rule file (default: <config-dir>/rules.yaml if present)." type:"path" env:"MINDCARE_RULES"`
	TypingDelay  time.Duration `help:"How long the companion types before replying." default:"${typing_delay}" env:"MINDCARE_TYPING_DELAY"`
	Seed         uint64        `help:"Seed for habit color and icon selection (0 for random)." env:"MINDCARE_SEED"`
	NoSampleData bool          `help:"Start with no habits or mood entries." env:"MINDCARE_NO_SAMPLE_DATA"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize the config directory and an editable rules file."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Chat   cli.ChatCmd   `cmd:"" help:"Talk to the companion."`
	Habit  cli.HabitCmd  `cmd:"" help:"Track habits and streaks."`
	Mood   cli.MoodCmd   `cmd:"" help:"Record and review your mood."`
	Rules  cli.RulesCmd  `cmd:"" help:"Inspect and validate response rules."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Dbg    cli.DebugCmd  `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Wellness companion: supportive chat, habit streaks and mood trends"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":      constants.Version,
			"config_dir":   constants.DefaultConfigDir,
			"typing_delay": constants.DefaultTypingDelay.String(),
		},
	)

	isTUI := ctx.Command() == "tui"
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: CLI.ConfigDir,
		Quiet:     isTUI,
	}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	// init must be able to replace a broken rules file
	appCtx, err := buildContext(ctx.Command() != "init")
	if err != nil {
		apperrors.Fatal(err)
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

func buildContext(loadRules bool) (*cli.Context, error) {
	var rulesPath string
	if loadRules {
		var err error
		if rulesPath, err = resolveRulesPath(CLI.RulesFile, CLI.ConfigDir); err != nil {
			return nil, err
		}
	}

	rules := companion.DefaultRuleSet()
	if rulesPath != "" {
		var err error
		if rules, err = companion.LoadRulesFile(rulesPath); err != nil {
			return nil, err
		}
		logger.Debug("Loaded response rules", "path", rulesPath, "rules", len(rules.Rules))
	}

	var ledgerOpts []habits.Option
	if CLI.Seed != 0 {
		ledgerOpts = append(ledgerOpts, habits.WithRand(rand.New(rand.NewPCG(CLI.Seed, CLI.Seed))))
	}

	moodLog := mood.NewLog()
	if !CLI.NoSampleData {
		ledgerOpts = append(ledgerOpts, habits.WithHabits(sample.Habits(time.Now())))
		if err := moodLog.Import(sample.MoodEntries()); err != nil {
			return nil, err
		}
	}

	return &cli.Context{
		Ledger:      habits.NewLedger(ledgerOpts...),
		Mood:        moodLog,
		Rules:       rules,
		Classifier:  companion.NewClassifier(rules),
		Clock:       companion.SystemClock,
		TypingDelay: CLI.TypingDelay,
		ConfigDir:   CLI.ConfigDir,
		RulesPath:   rulesPath,
	}, nil
}

// resolveRulesPath returns the explicit rules file, else the one in the config
// directory if it exists, else "" for the built-in table.
func resolveRulesPath(explicit, configDir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	path := filepath.Join(configDir, constants.RulesFileName)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", err
	}
}
