package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateDashboard SessionState = iota
	StateChat
	StateHabits
	StateMood
	StateAddHabit
	StateRecordMood
)

// TabCount is the number of navigable tabs (the states before the form states)
const TabCount = 4

const (
	AppName          = "mindcare"
	DefaultConfigDir = "~/.config/mindcare"
	Version          = "v0.1.0"
	RulesFileName    = "rules.yaml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultTypingDelay is how long the assistant "types" before a reply is delivered
	DefaultTypingDelay = 1500 * time.Millisecond

	// TrendWindow is the number of mood entries in each trend window
	TrendWindow = 3

	// DaysPerWeek is the length of a habit's weekly record
	DaysPerWeek = 7

	MinMoodScore = 1
	MaxMoodScore = 5

	DefaultHabitCategory   = "Mental Wellness"
	DefaultTargetDaysPerWk = 7
)

// HabitCategories lists the categories offered when adding a habit
var HabitCategories = []string{
	"Mental Wellness",
	"Physical Health",
	"Personal Growth",
	"Social",
	"Career",
}

// HabitColors is the palette a new habit's color is drawn from
var HabitColors = []string{"purple", "blue", "green", "yellow", "pink", "indigo"}

// HabitIcons is the palette a new habit's icon is drawn from
var HabitIcons = []string{"🧘", "📝", "🏃", "📚", "💪", "🎯", "🌱", "💡", "🎨", "🍎"}

// WeekDays labels the slots of a habit's weekly record
var WeekDays = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
