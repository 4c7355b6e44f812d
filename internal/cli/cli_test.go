package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindcare/internal/companion"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/models"
	"github.com/julianstephens/mindcare/internal/mood"
	"github.com/julianstephens/mindcare/internal/sample"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()

	now := time.Date(2024, 1, 16, 9, 0, 0, 0, time.Local)
	moodLog := mood.NewLog(mood.WithNow(func() time.Time { return now }))
	if err := moodLog.Import(sample.MoodEntries()); err != nil {
		t.Fatalf("failed to import sample mood entries: %v", err)
	}

	out := &bytes.Buffer{}
	ctx := &Context{
		Ledger:      habits.NewLedger(habits.WithHabits(sample.Habits(now))),
		Mood:        moodLog,
		Classifier:  companion.NewClassifier(nil),
		TypingDelay: 0,
		ConfigDir:   t.TempDir(),
		Out:         out,
	}
	return ctx, out
}

func TestChatCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &ChatCmd{Text: []string{"I", "can't", "sleep"}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("chat command failed: %v", err)
	}

	if !strings.HasPrefix(out.String(), "[suggestion] ") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestChatCmd_Empty(t *testing.T) {
	ctx, _ := setupTestContext(t)

	err := (&ChatCmd{}).Run(ctx)
	if !apperrors.IsInvalidInput(err) {
		t.Errorf("expected invalid input error, got: %v", err)
	}
}

func TestChatCmd_Prompts(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&ChatCmd{Prompts: true}).Run(ctx); err != nil {
		t.Fatalf("chat --prompts failed: %v", err)
	}
	if got := strings.Count(out.String(), "•"); got != len(ctx.Classifier.QuickPrompts()) {
		t.Errorf("printed %d prompts, want %d", got, len(ctx.Classifier.QuickPrompts()))
	}
}

func TestHabitToggleCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	// Exercise starts incomplete with a streak of 3
	if err := (&HabitToggleCmd{ID: "3"}).Run(ctx); err != nil {
		t.Fatalf("habit toggle failed: %v", err)
	}
	if !strings.Contains(out.String(), "Streak: 4") {
		t.Errorf("unexpected output: %q", out.String())
	}

	h, _ := ctx.Ledger.Get("3")
	if !h.CompletedToday {
		t.Error("expected habit to be completed")
	}
}

func TestHabitToggleCmd_NotFound(t *testing.T) {
	ctx, _ := setupTestContext(t)

	err := (&HabitToggleCmd{ID: "nonexistent-id"}).Run(ctx)
	if err == nil {
		t.Fatal("habit toggle should fail for a non-existent habit")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected 'not found' error, got: %v", err)
	}
}

func TestHabitAddCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &HabitAddCmd{Name: "Drink Water", Target: 7}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("habit add failed: %v", err)
	}
	if len(ctx.Ledger.List()) != 5 {
		t.Errorf("expected 5 habits, got %d", len(ctx.Ledger.List()))
	}
	if !strings.Contains(out.String(), "Mental Wellness") {
		t.Errorf("expected default category in output: %q", out.String())
	}

	if err := (&HabitAddCmd{Name: "  ", Target: 7}).Run(ctx); !apperrors.IsInvalidInput(err) {
		t.Errorf("expected invalid input for blank name, got: %v", err)
	}
}

func TestHabitListCmd_JSON(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&HabitListCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("habit list failed: %v", err)
	}

	var list []models.Habit
	if err := json.Unmarshal(out.Bytes(), &list); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(list) != 4 || list[0].Name != "Morning Meditation" {
		t.Errorf("unexpected habits: %+v", list)
	}
}

func TestHabitStatsCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&HabitStatsCmd{}).Run(ctx); err != nil {
		t.Fatalf("habit stats failed: %v", err)
	}
	for _, want := range []string{"2/4", "82%", "27 days"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output: %q", want, out.String())
		}
	}
}

func TestMoodRecordCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &MoodRecordCmd{Score: 5, Emotions: []string{"Calm"}, Note: "walk in the park"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("mood record failed: %v", err)
	}
	if !strings.Contains(out.String(), "Excellent") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if ctx.Mood.Len() != 8 {
		t.Errorf("expected 8 entries, got %d", ctx.Mood.Len())
	}

	if err := (&MoodRecordCmd{Score: 6}).Run(ctx); !apperrors.IsInvalidInput(err) {
		t.Errorf("expected invalid input for score 6, got: %v", err)
	}
}

func TestMoodListCmd_Limit(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&MoodListCmd{Limit: 2}).Run(ctx); err != nil {
		t.Fatalf("mood list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "2024-01-15") {
		t.Errorf("expected newest entry first, got %q", lines[0])
	}
}

func TestMoodStatsCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&MoodStatsCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("mood stats failed: %v", err)
	}
	var stats models.MoodStats
	if err := json.Unmarshal(out.Bytes(), &stats); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if stats.Count != 7 || stats.IsImproving {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestMoodStatsCmd_Empty(t *testing.T) {
	ctx, out := setupTestContext(t)
	ctx.Mood = mood.NewLog()

	if err := (&MoodStatsCmd{}).Run(ctx); err != nil {
		t.Fatalf("mood stats on an empty log should not fail: %v", err)
	}
	if !strings.Contains(out.String(), "No mood entries yet") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRulesCheckCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, companion.DefaultRulesYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (&RulesCheckCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("rules check failed: %v", err)
	}
	if !strings.Contains(out.String(), "5 rules") {
		t.Errorf("unexpected output: %q", out.String())
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules:\n  - keywords: []\n    reply: hi\n    category: support\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (&RulesCheckCmd{File: bad}).Run(ctx); err == nil {
		t.Error("rules check should fail for a rule without keywords")
	}
}

func TestRulesShowCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&RulesShowCmd{}).Run(ctx); err != nil {
		t.Fatalf("rules show failed: %v", err)
	}

	rs, err := companion.LoadRules(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("printed rules do not load back: %v", err)
	}
	if len(rs.Rules) != 5 {
		t.Errorf("expected 5 rules, got %d", len(rs.Rules))
	}
}

func TestRulesTestCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&RulesTestCmd{Text: "I feel anxious"}).Run(ctx); err != nil {
		t.Fatalf("rules test failed: %v", err)
	}
	var reply companion.Reply
	if err := json.Unmarshal(out.Bytes(), &reply); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if reply.Category != models.CategorySuggestion || !reply.Matched {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestInitCmd(t *testing.T) {
	ctx, _ := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := companion.LoadRulesFile(filepath.Join(ctx.ConfigDir, "rules.yaml")); err != nil {
		t.Errorf("scaffolded rules file is invalid: %v", err)
	}

	if err := (&InitCmd{}).Run(ctx); err == nil {
		t.Error("init should refuse to overwrite without --force")
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

func TestDoctorCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All diagnostics passed!") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestDoctorCmd_BadRulesFile(t *testing.T) {
	ctx, out := setupTestContext(t)
	ctx.RulesPath = filepath.Join(t.TempDir(), "missing.yaml")

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when the rules file is missing")
	}
	if !strings.Contains(out.String(), "Response rules: FAIL") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestDebugDumpHabitCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&DebugDumpHabitCmd{ID: "4"}).Run(ctx); err != nil {
		t.Fatalf("debug dump-habit failed: %v", err)
	}
	var h models.Habit
	if err := json.Unmarshal(out.Bytes(), &h); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if h.Name != "Read Before Bed" || h.Streak != 12 {
		t.Errorf("unexpected habit: %+v", h)
	}

	if err := (&DebugDumpHabitCmd{ID: "nope"}).Run(ctx); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found error, got: %v", err)
	}
}

func TestDebugPathsCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&DebugPathsCmd{}).Run(ctx); err != nil {
		t.Fatalf("debug paths failed: %v", err)
	}
	var paths map[string]string
	if err := json.Unmarshal(out.Bytes(), &paths); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if paths["rules"] != "(built-in)" {
		t.Errorf("rules = %q, want (built-in)", paths["rules"])
	}
}

func TestFormatWeek(t *testing.T) {
	got := FormatWeek(models.WeeklyRecord{true, false, true, true, false, true, false})
	if got != "M·WT·S·" {
		t.Errorf("FormatWeek() = %q, want M·WT·S·", got)
	}
}
