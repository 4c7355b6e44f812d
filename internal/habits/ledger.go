// Package habits tracks daily habit completion, streaks and weekly records.
package habits

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindcare/internal/constants"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/models"
)

// RandSource picks palette entries for new habits. *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewHabit holds the user-supplied fields of a habit
type NewHabit struct {
	Name              string
	Description       string
	Category          string
	TargetDaysPerWeek int
}

// Ledger owns the tracked habits. It is not safe for concurrent use.
type Ledger struct {
	habits []models.Habit
	rng    RandSource
	newID  func() string
	now    func() time.Time
}

type Option func(*Ledger)

// WithRand sets the source used to pick colors and icons
func WithRand(r RandSource) Option {
	return func(l *Ledger) { l.rng = r }
}

// WithHabits seeds the ledger, e.g. with sample data owned by the presentation layer
func WithHabits(habits []models.Habit) Option {
	return func(l *Ledger) {
		l.habits = append([]models.Habit(nil), habits...)
	}
}

// WithIDFunc overrides habit id generation
func WithIDFunc(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// WithNow overrides the creation timestamp source
func WithNow(fn func() time.Time) Option {
	return func(l *Ledger) { l.now = fn }
}

// NewLedger creates a ledger
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		rng:   globalRand{},
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the habits in insertion order
func (l *Ledger) List() []models.Habit {
	out := make([]models.Habit, len(l.habits))
	copy(out, l.habits)
	return out
}

// Get returns the habit with the given id
func (l *Ledger) Get(id string) (models.Habit, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Habit{}, apperrors.NotFound("habit", id)
	}
	return l.habits[i], nil
}

// Toggle flips today's completion. Completing bumps the streak; un-completing
// takes it back, never below zero. The weekly record is left alone: it
// describes the already closed week.
func (l *Ledger) Toggle(id string) (models.Habit, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Habit{}, apperrors.NotFound("habit", id)
	}

	h := &l.habits[i]
	if h.CompletedToday {
		h.CompletedToday = false
		h.Streak = max(0, h.Streak-1)
	} else {
		h.CompletedToday = true
		h.Streak++
	}

	logger.Debug("Habit toggled", "id", h.ID, "completed", h.CompletedToday, "streak", h.Streak)
	return *h, nil
}

// Add creates a habit with no progress and a randomly chosen color and icon.
// A zero target means every day; an empty category gets the default.
func (l *Ledger) Add(nh NewHabit) (models.Habit, error) {
	category := strings.TrimSpace(nh.Category)
	if category == "" {
		category = constants.DefaultHabitCategory
	}
	target := nh.TargetDaysPerWeek
	if target == 0 {
		target = constants.DefaultTargetDaysPerWk
	}

	h := models.Habit{
		ID:                l.newID(),
		Name:              strings.TrimSpace(nh.Name),
		Description:       strings.TrimSpace(nh.Description),
		Category:          category,
		Color:             constants.HabitColors[l.rng.IntN(len(constants.HabitColors))],
		Icon:              constants.HabitIcons[l.rng.IntN(len(constants.HabitIcons))],
		TargetDaysPerWeek: target,
		CreatedAt:         l.now(),
	}
	if err := h.Validate(); err != nil {
		return models.Habit{}, err
	}

	l.habits = append(l.habits, h)
	logger.Debug("Habit added", "id", h.ID, "name", h.Name, "category", h.Category)
	return h, nil
}

// CompletionRate returns the weekly completion rate of the ledger's habits
func (l *Ledger) CompletionRate() float64 {
	return CompletionRate(l.habits)
}

// TotalStreak returns the sum of the ledger's streaks
func (l *Ledger) TotalStreak() int {
	return TotalStreak(l.habits)
}

// CompletedToday returns how many habits are done today out of the total
func (l *Ledger) CompletedToday() (done, total int) {
	for _, h := range l.habits {
		if h.CompletedToday {
			done++
		}
	}
	return done, len(l.habits)
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.habits {
		if l.habits[i].ID == id {
			return i
		}
	}
	return -1
}
