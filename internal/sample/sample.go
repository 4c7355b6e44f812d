// Package sample provides the demo habits and mood history a fresh session starts with.
package sample

import (
	"time"

	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/models"
)

// Habits returns the four demo habits
func Habits(now time.Time) []models.Habit {
	return []models.Habit{
		{
			ID:                "1",
			Name:              "Morning Meditation",
			Description:       "10 minutes of mindfulness",
			Category:          "Mental Wellness",
			Color:             "purple",
			Icon:              "🧘",
			TargetDaysPerWeek: 7,
			Streak:            7,
			CompletedToday:    true,
			WeeklyRecord:      models.WeeklyRecord{true, true, true, true, true, true, true},
			CreatedAt:         now,
		},
		{
			ID:                "2",
			Name:              "Gratitude Journal",
			Description:       "Write 3 things I'm grateful for",
			Category:          "Mental Wellness",
			Color:             "yellow",
			Icon:              "📝",
			TargetDaysPerWeek: 7,
			Streak:            5,
			CompletedToday:    true,
			WeeklyRecord:      models.WeeklyRecord{true, true, false, true, true, true, true},
			CreatedAt:         now,
		},
		{
			ID:                "3",
			Name:              "Exercise",
			Description:       "30 minutes of physical activity",
			Category:          "Physical Health",
			Color:             "green",
			Icon:              "🏃",
			TargetDaysPerWeek: 5,
			Streak:            3,
			WeeklyRecord:      models.WeeklyRecord{true, false, true, true, false, true, false},
			CreatedAt:         now,
		},
		{
			ID:                "4",
			Name:              "Read Before Bed",
			Description:       "20 minutes of reading",
			Category:          "Personal Growth",
			Color:             "blue",
			Icon:              "📚",
			TargetDaysPerWeek: 6,
			Streak:            12,
			WeeklyRecord:      models.WeeklyRecord{true, true, true, true, true, true, false},
			CreatedAt:         now,
		},
	}
}

// MoodEntries returns a week of demo check-ins in chronological order
func MoodEntries() []models.MoodEntry {
	entries := []models.MoodEntry{
		{ID: "7", Date: "2024-01-09", Score: 2, Emotions: []string{"Sad", "Lonely"}},
		{ID: "6", Date: "2024-01-10", Score: 4, Emotions: []string{"Optimistic", "Creative"}},
		{ID: "5", Date: "2024-01-11", Score: 3, Emotions: []string{"Neutral", "Productive"}},
		{ID: "4", Date: "2024-01-12", Score: 5, Emotions: []string{"Joyful", "Grateful"}, Note: "Amazing weekend!"},
		{ID: "3", Date: "2024-01-13", Score: 2, Emotions: []string{"Anxious", "Tired"}, Note: "Stressful deadline"},
		{ID: "2", Date: "2024-01-14", Score: 3, Emotions: []string{"Calm", "Focused"}},
		{ID: "1", Date: "2024-01-15", Score: 4, Emotions: []string{"Happy", "Energetic"}, Note: "Great day at work!"},
	}
	for i := range entries {
		t, _ := time.Parse(constants.DateFormat, entries[i].Date)
		entries[i].CreatedAt = t.Add(20 * time.Hour)
	}
	return entries
}
