package mood

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mindcare/internal/models"
	moodsvc "github.com/julianstephens/mindcare/internal/mood"
)

type RecordMoodMsg struct{}

var (
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	improvingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	stableStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

type Item struct {
	Entry models.MoodEntry
}

func (i Item) Title() string {
	lvl, err := moodsvc.LevelFor(i.Entry.Score)
	if err != nil {
		return i.Entry.Date
	}
	return fmt.Sprintf("%s %s · %s", lvl.Icon, lvl.Label, i.Entry.Date)
}

func (i Item) Description() string {
	parts := []string{humanize.Time(i.Entry.CreatedAt)}
	if len(i.Entry.Emotions) > 0 {
		parts = append(parts, strings.Join(i.Entry.Emotions, ", "))
	}
	if i.Entry.Note != "" {
		parts = append(parts, fmt.Sprintf("%q", i.Entry.Note))
	}
	return strings.Join(parts, " · ")
}

func (i Item) FilterValue() string {
	return i.Entry.Note + " " + strings.Join(i.Entry.Emotions, " ")
}

type KeyMap struct {
	Record key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Record: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "record mood"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	stats *models.MoodStats
}

func New(entries []models.MoodEntry, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Mood"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Record}
	}

	m := Model{list: l, keys: keys}
	m.SetEntries(entries)
	m.SetSize(width, height)
	return m
}

// SetEntries replaces the displayed log; entries must be chronological
func (m *Model) SetEntries(entries []models.MoodEntry) {
	m.stats = nil
	if stats, err := moodsvc.Stats(entries); err == nil {
		m.stats = &stats
	}

	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[len(entries)-1-i] = Item{Entry: e}
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
		if key.Matches(msg, m.keys.Record) {
			return m, func() tea.Msg { return RecordMoodMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.stats == nil {
		return "\n  No mood entries yet.\n  Press 'r' to record how you feel."
	}

	trend := stableStyle.Render(m.stats.TrendLabel())
	if m.stats.IsImproving {
		trend = improvingStyle.Render(m.stats.TrendLabel())
	}
	summary := fmt.Sprintf("%s %.1f/5   %s %s (%.1f vs %.1f)",
		labelStyle.Render("Average"), m.stats.Average,
		labelStyle.Render("Trend"), trend, m.stats.RecentTrendAvg, m.stats.PriorTrendAvg,
	)
	return lipgloss.JoinVertical(lipgloss.Left, summary, "", m.list.View())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, max(1, height-2))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Record}
}
