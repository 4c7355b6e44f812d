package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindcare/internal/constants"
	habitsvc "github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

var (
	doneDay    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missedDay  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	summaryKey = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	check := "○"
	if i.Habit.CompletedToday {
		check = "✓"
	}
	return fmt.Sprintf("%s %s %s", check, i.Habit.Icon, i.Habit.Name)
}

func (i Item) Description() string {
	p := habitsvc.WeeklyProgress(i.Habit)
	return fmt.Sprintf("%s  %d/%d this week  🔥 %d  %s",
		weekRow(i.Habit.WeeklyRecord), p.Completed, p.Target, i.Habit.Streak, i.Habit.Category)
}

func (i Item) FilterValue() string { return i.Habit.Name }

func weekRow(w models.WeeklyRecord) string {
	var b strings.Builder
	for d, done := range w {
		label := constants.WeekDays[d][:1]
		if done {
			b.WriteString(doneDay.Render(label))
		} else {
			b.WriteString(missedDay.Render(label))
		}
	}
	return b.String()
}

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle today"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	progress progress.Model
	habits   []models.Habit
}

func New(habits []models.Habit, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle}
	}

	m := Model{
		list:     l,
		keys:     keys,
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.SetHabits(habits)
	m.SetSize(width, height)
	return m
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}

	rate := habitsvc.CompletionRate(m.habits)
	summary := fmt.Sprintf("%s %s  %s %d days",
		summaryKey.Render("Weekly completion"),
		m.progress.ViewAs(rate/100),
		summaryKey.Render("Total streak"),
		habitsvc.TotalStreak(m.habits),
	)
	return lipgloss.JoinVertical(lipgloss.Left, summary, "", m.list.View())
}

func (m *Model) SetSize(width, height int) {
	m.progress.Width = max(10, width/3)
	m.list.SetSize(width, max(1, height-2))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Add}
}
