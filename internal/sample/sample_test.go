package sample

import (
	"math"
	"testing"
	"time"

	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/mood"
)

func TestHabitsAreValid(t *testing.T) {
	hs := Habits(time.Now())
	if len(hs) != 4 {
		t.Fatalf("len(Habits()) = %d, want 4", len(hs))
	}
	for _, h := range hs {
		if err := h.Validate(); err != nil {
			t.Errorf("habit %q: %v", h.Name, err)
		}
	}
	if got := habits.TotalStreak(hs); got != 27 {
		t.Errorf("TotalStreak() = %d, want 27", got)
	}
	// 7+6+4+6 of 28 slots
	if got := habits.CompletionRate(hs); math.Abs(got-82.14) > 0.01 {
		t.Errorf("CompletionRate() = %.2f, want 82.14", got)
	}
}

func TestMoodEntriesImport(t *testing.T) {
	l := mood.NewLog()
	if err := l.Import(MoodEntries()); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	stats, err := l.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if math.Abs(stats.Average-3.29) > 0.01 {
		t.Errorf("Average = %.2f, want 3.29", stats.Average)
	}
	// recent 2,3,4 against prior 4,3,5
	if stats.IsImproving {
		t.Error("IsImproving = true, want false")
	}
	if l.List()[0].Date != "2024-01-15" {
		t.Errorf("newest entry = %s, want 2024-01-15", l.List()[0].Date)
	}
}
