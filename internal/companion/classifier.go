package companion

import (
	"strings"

	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/models"
)

// Reply is the classifier's answer to a message
type Reply struct {
	Text     string          `json:"text"`
	Category models.Category `json:"category"`
	// Matched is false when the default reply was used
	Matched bool `json:"matched"`
}

// Classifier maps free text to a canned reply using an ordered keyword table.
// It holds no mutable state and is safe to share.
type Classifier struct {
	rules *RuleSet
}

// NewClassifier creates a classifier over rs; a nil rs uses the built-in table
func NewClassifier(rs *RuleSet) *Classifier {
	if rs == nil {
		rs = DefaultRuleSet()
	}
	return &Classifier{rules: rs}
}

// Classify returns the reply of the first rule with a keyword contained in
// text, or the default reply when nothing matches.
func (c *Classifier) Classify(text string) (Reply, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Reply{}, apperrors.InvalidInput("message cannot be empty")
	}

	for i := range c.rules.Rules {
		rule := &c.rules.Rules[i]
		if rule.Matches(normalized) {
			return Reply{Text: rule.Reply, Category: rule.Category, Matched: true}, nil
		}
	}

	return Reply{Text: c.rules.Default.Reply, Category: c.rules.Default.Category}, nil
}

// Greeting returns the assistant's opening message
func (c *Classifier) Greeting() string {
	return c.rules.Greeting
}

// QuickPrompts returns canned messages the user can send with one action
func (c *Classifier) QuickPrompts() []string {
	out := make([]string, len(c.rules.QuickPrompts))
	copy(out, c.rules.QuickPrompts)
	return out
}

// Rules returns the number of configured rules
func (c *Classifier) Rules() int {
	return len(c.rules.Rules)
}
