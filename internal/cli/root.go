package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/mindcare/internal/companion"
	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/models"
	"github.com/julianstephens/mindcare/internal/mood"
)

// Context carries the session state every command runs against. Nothing in it
// outlives the process.
type Context struct {
	Ledger      *habits.Ledger
	Mood        *mood.Log
	Rules       *companion.RuleSet
	Classifier  *companion.Classifier
	Clock       companion.Clock
	TypingDelay time.Duration
	ConfigDir   string
	RulesPath   string // empty when the built-in table is used
	Out         io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) clock() companion.Clock {
	if c.Clock == nil {
		return companion.SystemClock
	}
	return c.Clock
}

// NewConversation starts a chat session using the context's clock and delay
func (c *Context) NewConversation() *companion.Conversation {
	return companion.NewConversation(c.Classifier,
		companion.WithClock(c.clock()),
		companion.WithDelay(c.TypingDelay),
	)
}

func (c *Context) printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(c.out(), string(jsonBytes))
	return nil
}

// FormatWeek renders a weekly record as a row of day initials, e.g. "MT·TF·S"
func FormatWeek(w models.WeeklyRecord) string {
	var b strings.Builder
	for i, done := range w {
		if done {
			b.WriteByte(constants.WeekDays[i][0])
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}

// FormatScore renders a mood score with its level icon and label
func FormatScore(score int) string {
	lvl, err := mood.LevelFor(score)
	if err != nil {
		return fmt.Sprintf("%d", score)
	}
	return fmt.Sprintf("%s %d %s", lvl.Icon, score, lvl.Label)
}
