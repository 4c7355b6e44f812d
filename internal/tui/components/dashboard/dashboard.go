package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/models"
	"github.com/julianstephens/mindcare/internal/mood"
)

// SwitchTabMsg asks the parent to show another tab
type SwitchTabMsg struct {
	State constants.SessionState
}

const recentEntries = 3

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Width(18)

	cardLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Chat   key.Binding
	Habits key.Binding
	Mood   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "quick chat"),
		),
		Habits: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "view progress"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "log mood"),
		),
	}
}

type Model struct {
	keys     KeyMap
	progress progress.Model
	habits   []models.Habit
	entries  []models.MoodEntry // chronological
}

func New(habits []models.Habit, entries []models.MoodEntry) Model {
	return Model{
		keys:     DefaultKeyMap(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		habits:   habits,
		entries:  entries,
	}
}

func (m *Model) SetData(habits []models.Habit, entries []models.MoodEntry) {
	m.habits = habits
	m.entries = entries
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Chat):
			return m, switchTo(constants.StateChat)
		case key.Matches(msg, m.keys.Habits):
			return m, switchTo(constants.StateHabits)
		case key.Matches(msg, m.keys.Mood):
			return m, switchTo(constants.StateMood)
		}
	}
	return m, nil
}

func switchTo(state constants.SessionState) tea.Cmd {
	return func() tea.Msg { return SwitchTabMsg{State: state} }
}

func card(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cardLabel.Render(label), cardValue.Render(value)))
}

func (m Model) View() string {
	done := 0
	for _, h := range m.habits {
		if h.CompletedToday {
			done++
		}
	}

	currentMood, avgMood := "—", "—"
	if n := len(m.entries); n > 0 {
		if lvl, err := mood.LevelFor(m.entries[n-1].Score); err == nil {
			currentMood = lvl.Icon + " " + lvl.Label
		}
	}
	trend := ""
	if stats, err := mood.Stats(m.entries); err == nil {
		avgMood = fmt.Sprintf("%.1f/5", stats.Average)
		trend = stats.TrendLabel()
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Current Mood", currentMood),
		card("Total Streak", fmt.Sprintf("%d days", habits.TotalStreak(m.habits))),
		card("Habits Today", fmt.Sprintf("%d/%d", done, len(m.habits))),
		card("Average Mood", avgMood),
	)

	rate := habits.CompletionRate(m.habits)
	progressView := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("This Week's Progress"),
		fmt.Sprintf("%s %.0f%%", m.progress.ViewAs(rate/100), rate),
	)
	if trend != "" {
		progressView = lipgloss.JoinVertical(lipgloss.Left, progressView, mutedStyle.Render("Mood trend: "+trend))
	}

	recent := []string{headerStyle.Render("Recent Check-ins")}
	if len(m.entries) == 0 {
		recent = append(recent, mutedStyle.Render("Nothing logged yet."))
	}
	for i := len(m.entries) - 1; i >= 0 && i >= len(m.entries)-recentEntries; i-- {
		e := m.entries[i]
		lvl, _ := mood.LevelFor(e.Score)
		recent = append(recent, fmt.Sprintf("%s %-9s %s", lvl.Icon, lvl.Label, mutedStyle.Render(humanize.Time(e.CreatedAt))))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Welcome back! Let's continue your wellness journey today."),
		"",
		cards,
		progressView,
		lipgloss.JoinVertical(lipgloss.Left, recent...),
	)
}

func (m *Model) SetSize(width, height int) {
	m.progress.Width = max(10, min(60, width-10))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Chat, m.keys.Habits, m.keys.Mood}
}
