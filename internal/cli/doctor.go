package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/mindcare/internal/companion"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: log directory writable
	if err := checkLogDirWritable(ctx); err != nil {
		fmt.Fprintf(out, "❌ Log directory writable: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Log directory writable: OK\n")
	}

	// Check 2: response rules valid
	if n, err := checkRules(ctx); err != nil {
		fmt.Fprintf(out, "❌ Response rules: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Response rules: OK (%d rules)\n", n)
	}

	// Check 3: session data valid
	if err := checkSessionData(ctx); err != nil {
		fmt.Fprintf(out, "❌ Session data: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Session data: OK\n")
	}

	// Check 4: clock/timezone sanity
	if note, err := checkClockTimezone(ctx.clock().Now()); err != nil {
		fmt.Fprintf(out, "❌ Clock/timezone: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Clock/timezone: OK\n")
		if note != "" {
			fmt.Fprintf(out, "   Note: %s\n", note)
		}
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkLogDirWritable(ctx *Context) error {
	if ctx.ConfigDir == "" {
		return fmt.Errorf("no config directory configured")
	}
	logDir := filepath.Join(ctx.ConfigDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.CreateTemp(logDir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("log directory is not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func checkRules(ctx *Context) (int, error) {
	if ctx.RulesPath != "" {
		rs, err := companion.LoadRulesFile(ctx.RulesPath)
		if err != nil {
			return 0, err
		}
		return len(rs.Rules), nil
	}

	rs := ctx.Rules
	if rs == nil {
		rs = companion.DefaultRuleSet()
	}
	if err := rs.Validate(); err != nil {
		return 0, err
	}
	return len(rs.Rules), nil
}

func checkSessionData(ctx *Context) error {
	seen := make(map[string]bool)
	for _, h := range ctx.Ledger.List() {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		seen[h.ID] = true
		if err := h.Validate(); err != nil {
			return fmt.Errorf("habit %q: %w", h.Name, err)
		}
	}

	for _, e := range ctx.Mood.Entries() {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("mood entry %s: %w", e.ID, err)
		}
	}
	return nil
}

func checkClockTimezone(now time.Time) (string, error) {
	if now.Year() < 2020 || now.Year() > 2100 {
		return "", fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		return "timezone is UTC; \"today\" follows UTC midnight", nil
	}
	return "", nil
}
