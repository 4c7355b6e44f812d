package habits

import (
	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/models"
)

// CompletionRate returns the percentage (0-100) of completed slots across all
// weekly records. An empty collection yields 0.
func CompletionRate(habits []models.Habit) float64 {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for _, h := range habits {
		completed += h.WeeklyRecord.Count()
	}
	return float64(completed) / float64(constants.DaysPerWeek*len(habits)) * 100
}

// TotalStreak returns the sum of all streaks
func TotalStreak(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += h.Streak
	}
	return total
}

// Progress summarizes a habit's weekly record against its target
type Progress struct {
	Completed int     `json:"completed"`
	Target    int     `json:"target"`
	Percent   float64 `json:"percent"` // completed/target, capped at 100
}

// WeeklyProgress reports how close a habit's weekly record is to its target
func WeeklyProgress(h models.Habit) Progress {
	p := Progress{Completed: h.WeeklyRecord.Count(), Target: h.TargetDaysPerWeek}
	if p.Target > 0 {
		p.Percent = min(100, float64(p.Completed)/float64(p.Target)*100)
	}
	return p
}

// Categories returns the categories offered when adding a habit
func Categories() []string {
	return append([]string(nil), constants.HabitCategories...)
}
