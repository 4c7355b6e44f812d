package companion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/mindcare/internal/models"
)

func TestDefaultRuleSet(t *testing.T) {
	rs := DefaultRuleSet()
	require.Len(t, rs.Rules, 5)
	assert.Equal(t, []string{"sad", "down", "depressed", "low"}, rs.Rules[0].Keywords)
	assert.Equal(t, models.CategorySuggestion, rs.Rules[1].Category)
	assert.Equal(t, models.CategorySupport, rs.Default.Category)
	assert.NotEmpty(t, rs.Default.Reply)
	assert.NotContains(t, rs.Rules[0].Reply, "\n")
}

func TestLoadRules(t *testing.T) {
	doc := `
rules:
  - keywords: [Lonely, " Isolated "]
    category: support
    reply: You are not alone.
  - keywords: [goal]
    category: question
    reply: What goal matters most this week?
`
	rs, err := LoadRules(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, []string{"lonely", "isolated"}, rs.Rules[0].Keywords)

	// omitted sections come from the built-in table
	builtin := DefaultRuleSet()
	assert.Equal(t, builtin.Greeting, rs.Greeting)
	assert.Equal(t, builtin.Default, rs.Default)
	assert.Equal(t, builtin.QuickPrompts, rs.QuickPrompts)

	reply, err := NewClassifier(rs).Classify("Feeling LONELY tonight")
	require.NoError(t, err)
	assert.Equal(t, "You are not alone.", reply.Text)
}

func TestLoadRules_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "empty document",
			doc:  "",
			want: "empty",
		},
		{
			name: "unknown category",
			doc:  "rules:\n  - keywords: [a]\n    category: praise\n    reply: hi\n",
			want: `unknown category "praise"`,
		},
		{
			name: "missing keywords",
			doc:  "rules:\n  - category: support\n    reply: hi\n",
			want: "at least one keyword",
		},
		{
			name: "blank keyword",
			doc:  "rules:\n  - keywords: [\"  \"]\n    category: support\n    reply: hi\n",
			want: "keywords cannot be empty",
		},
		{
			name: "missing reply",
			doc:  "rules:\n  - keywords: [a]\n    category: support\n",
			want: "reply cannot be empty",
		},
		{
			name: "unknown field",
			doc:  "rulez: []\n",
			want: "failed to parse rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	doc := "default:\n  category: question\n  reply: Tell me more?\nrules: []\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	rs, err := LoadRulesFile(path)
	require.NoError(t, err)
	assert.Empty(t, rs.Rules)

	reply, err := NewClassifier(rs).Classify("anything at all")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryQuestion, reply.Category)
	assert.Equal(t, "Tell me more?", reply.Text)

	_, err = LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
