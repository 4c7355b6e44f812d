package mood

import (
	"math"
	"testing"

	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/models"
)

func entriesWithScores(scores ...int) []models.MoodEntry {
	entries := make([]models.MoodEntry, len(scores))
	for i, s := range scores {
		entries[i] = models.MoodEntry{Score: s}
	}
	return entries
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestStats(t *testing.T) {
	tests := []struct {
		name        string
		scores      []int
		average     float64
		recent      float64
		prior       float64
		improving   bool
		recentCount int
		priorCount  int
		fullTrend   bool
	}{
		{
			name:        "week of entries",
			scores:      []int{4, 3, 2, 5, 3, 4, 2},
			average:     3.29,
			recent:      3.0, // 3,4,2
			prior:       3.33, // 3,2,5
			improving:   false,
			recentCount: 3,
			priorCount:  3,
			fullTrend:   true,
		},
		{
			name:        "clear improvement",
			scores:      []int{1, 2, 1, 4, 5, 4},
			average:     2.83,
			recent:      4.33,
			prior:       1.33,
			improving:   true,
			recentCount: 3,
			priorCount:  3,
			fullTrend:   true,
		},
		{
			name:        "single entry",
			scores:      []int{4},
			average:     4,
			recent:      4,
			prior:       4,
			improving:   false,
			recentCount: 1,
			priorCount:  0,
		},
		{
			name:        "three entries have no prior window",
			scores:      []int{1, 3, 5},
			average:     3,
			recent:      3,
			prior:       3,
			improving:   false,
			recentCount: 3,
			priorCount:  0,
		},
		{
			name:        "four entries use a partial prior window",
			scores:      []int{2, 3, 4, 5},
			average:     3.5,
			recent:      4,
			prior:       2,
			improving:   true,
			recentCount: 3,
			priorCount:  1,
		},
		{
			name:        "declining",
			scores:      []int{5, 5, 4, 2, 2, 1},
			average:     3.17,
			recent:      1.67,
			prior:       4.67,
			improving:   false,
			recentCount: 3,
			priorCount:  3,
			fullTrend:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := Stats(entriesWithScores(tt.scores...))
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if !approx(stats.Average, tt.average) {
				t.Errorf("Average = %.4f, want %.2f", stats.Average, tt.average)
			}
			if !approx(stats.RecentTrendAvg, tt.recent) {
				t.Errorf("RecentTrendAvg = %.4f, want %.2f", stats.RecentTrendAvg, tt.recent)
			}
			if !approx(stats.PriorTrendAvg, tt.prior) {
				t.Errorf("PriorTrendAvg = %.4f, want %.2f", stats.PriorTrendAvg, tt.prior)
			}
			if stats.IsImproving != tt.improving {
				t.Errorf("IsImproving = %v, want %v", stats.IsImproving, tt.improving)
			}
			if stats.RecentCount != tt.recentCount || stats.PriorCount != tt.priorCount {
				t.Errorf("window sizes = %d/%d, want %d/%d", stats.RecentCount, stats.PriorCount, tt.recentCount, tt.priorCount)
			}
			if stats.HasFullTrend() != tt.fullTrend {
				t.Errorf("HasFullTrend() = %v, want %v", stats.HasFullTrend(), tt.fullTrend)
			}
			if stats.Count != len(tt.scores) {
				t.Errorf("Count = %d, want %d", stats.Count, len(tt.scores))
			}
		})
	}
}

func TestStats_Empty(t *testing.T) {
	_, err := Stats(nil)
	if err == nil {
		t.Fatal("expected an error for an empty log")
	}
	if !apperrors.IsInsufficientData(err) {
		t.Errorf("expected insufficient data error, got %v", err)
	}
}

func TestTrendLabel(t *testing.T) {
	improving, _ := Stats(entriesWithScores(1, 1, 1, 5, 5, 5))
	if got := improving.TrendLabel(); got != "Improving" {
		t.Errorf("TrendLabel() = %q, want Improving", got)
	}
	flat, _ := Stats(entriesWithScores(3, 3, 3, 3, 3, 3))
	if got := flat.TrendLabel(); got != "Stable" {
		t.Errorf("TrendLabel() = %q, want Stable", got)
	}
}
