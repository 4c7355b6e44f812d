package models

import (
	"strings"
	"time"

	"github.com/julianstephens/mindcare/internal/constants"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
)

// WeeklyRecord holds completion flags for a Monday-Sunday window (index 0 = Monday)
type WeeklyRecord [constants.DaysPerWeek]bool

// Count returns the number of completed days in the record
func (w WeeklyRecord) Count() int {
	n := 0
	for _, done := range w {
		if done {
			n++
		}
	}
	return n
}

// Habit represents a recurring practice to track
type Habit struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Category          string       `json:"category"`
	Color             string       `json:"color"`
	Icon              string       `json:"icon"`
	TargetDaysPerWeek int          `json:"target_days_per_week"`
	Streak            int          `json:"streak"`
	CompletedToday    bool         `json:"completed_today"`
	WeeklyRecord      WeeklyRecord `json:"weekly_record"`
	CreatedAt         time.Time    `json:"created_at"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return apperrors.InvalidInput("habit name cannot be empty")
	}
	if h.TargetDaysPerWeek < 1 || h.TargetDaysPerWeek > constants.DaysPerWeek {
		return apperrors.InvalidInput("target days per week must be between 1 and %d, got %d", constants.DaysPerWeek, h.TargetDaysPerWeek)
	}
	if h.Streak < 0 {
		return apperrors.InvalidInput("streak cannot be negative")
	}
	return nil
}

// MetTarget reports whether the weekly record reaches the habit's weekly target
func (h *Habit) MetTarget() bool {
	return h.WeeklyRecord.Count() >= h.TargetDaysPerWeek
}
