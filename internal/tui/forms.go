package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/mood"
)

type HabitFormModel struct {
	Name        string
	Description string
	Category    string
	Target      int
}

type MoodFormModel struct {
	Score    int
	Emotions []string
	Note     string
}

// NewHabitForm creates a new form for adding habits
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	targets := make([]huh.Option[int], 0, constants.DaysPerWeek)
	for d := constants.DaysPerWeek; d >= 1; d-- {
		targets = append(targets, huh.NewOption(fmt.Sprintf("%d days/week", d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Placeholder("e.g., Drink 8 glasses of water").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Placeholder("Brief description of your habit").
				Value(&fm.Description),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(habits.Categories()...)...).
				Value(&fm.Category),
			huh.NewSelect[int]().
				Title("Target").
				Options(targets...).
				Value(&fm.Target),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewMoodForm creates a new form for recording a mood entry
func NewMoodForm(fm *MoodFormModel) *huh.Form {
	levels := mood.Levels()
	scores := make([]huh.Option[int], 0, len(levels))
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		scores = append(scores, huh.NewOption(fmt.Sprintf("%s %s", lvl.Icon, lvl.Label), lvl.Score))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How are you feeling?").
				Options(scores...).
				Value(&fm.Score),
			huh.NewMultiSelect[string]().
				Title("What emotions are you experiencing?").
				Options(huh.NewOptions(mood.Emotions()...)...).
				Value(&fm.Emotions),
			huh.NewText().
				Title("Notes (optional)").
				Placeholder("What's on your mind today?").
				CharLimit(500).
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}
