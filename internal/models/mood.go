package models

import (
	"time"

	"github.com/julianstephens/mindcare/internal/constants"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
)

// MoodEntry is a single check-in in the mood log
type MoodEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Score     int       `json:"score"`
	Emotions  []string  `json:"emotions"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *MoodEntry) Validate() error {
	if err := ValidateMoodScore(e.Score); err != nil {
		return err
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return apperrors.InvalidInput("invalid date format %q (expected YYYY-MM-DD)", e.Date)
	}
	return nil
}

// ValidateMoodScore rejects scores outside the 1-5 scale
func ValidateMoodScore(score int) error {
	if score < constants.MinMoodScore || score > constants.MaxMoodScore {
		return apperrors.InvalidInput("mood score must be between %d and %d, got %d", constants.MinMoodScore, constants.MaxMoodScore, score)
	}
	return nil
}

// MoodStats is derived from the mood log on demand and never stored
type MoodStats struct {
	Average        float64 `json:"average"`
	RecentTrendAvg float64 `json:"recent_trend_avg"`
	PriorTrendAvg  float64 `json:"prior_trend_avg"`
	IsImproving    bool    `json:"is_improving"`
	Count          int     `json:"count"`
	RecentCount    int     `json:"recent_count"` // entries actually in the recent window
	PriorCount     int     `json:"prior_count"`  // entries actually in the prior window
}

// HasFullTrend reports whether both trend windows were complete
func (s MoodStats) HasFullTrend() bool {
	return s.RecentCount == constants.TrendWindow && s.PriorCount == constants.TrendWindow
}

// TrendLabel returns the dashboard wording for the trend direction
func (s MoodStats) TrendLabel() string {
	if s.IsImproving {
		return "Improving"
	}
	return "Stable"
}
