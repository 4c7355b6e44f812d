package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindcare/internal/companion"
	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/mood"
	"github.com/julianstephens/mindcare/internal/tui/components/chat"
	"github.com/julianstephens/mindcare/internal/tui/components/dashboard"
	habitsview "github.com/julianstephens/mindcare/internal/tui/components/habits"
	moodview "github.com/julianstephens/mindcare/internal/tui/components/mood"
)

type Model struct {
	ledger        *habits.Ledger
	moodLog       *mood.Log
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	dashboard     dashboard.Model
	chat          chat.Model
	habitsModel   habitsview.Model
	moodModel     moodview.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	moodForm      *MoodFormModel
	formError     string
	quitting      bool
	width, height int
}

func NewModel(ledger *habits.Ledger, moodLog *mood.Log, conv *companion.Conversation) Model {
	return Model{
		ledger:      ledger,
		moodLog:     moodLog,
		state:       constants.StateDashboard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		dashboard:   dashboard.New(ledger.List(), moodLog.Entries()),
		chat:        chat.New(conv, 0, 0),
		habitsModel: habitsview.New(ledger.List(), 0, 0),
		moodModel:   moodview.New(moodLog.Entries(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit}
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.dashboard.ShortHelp()...)
	case constants.StateChat:
		keys = append(keys, m.chat.ShortHelp()...)
	case constants.StateHabits:
		keys = append(keys, m.habitsModel.ShortHelp()...)
	case constants.StateMood:
		keys = append(keys, m.moodModel.ShortHelp()...)
	}
	if m.state != constants.StateChat {
		keys = append(keys, m.keys.Help)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = m.dashboard.ShortHelp()
	case constants.StateChat:
		actions = m.chat.ShortHelp()
	case constants.StateHabits:
		actions = m.habitsModel.ShortHelp()
	case constants.StateMood:
		actions = m.moodModel.ShortHelp()
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return m.chat.Init()
}

// tab returns the tab a state belongs to; forms belong to the tab that opened them
func (m Model) tab() constants.SessionState {
	switch m.state {
	case constants.StateAddHabit:
		return constants.StateHabits
	case constants.StateRecordMood:
		return constants.StateMood
	}
	return m.state
}

// refresh reloads every view from the ledger and the mood log
func (m *Model) refresh() {
	list := m.ledger.List()
	entries := m.moodLog.Entries()
	m.dashboard.SetData(list, entries)
	m.habitsModel.SetHabits(list)
	m.moodModel.SetEntries(entries)
}

func (m *Model) resize() {
	w, h := docStyle.GetFrameSize()
	width := max(0, m.width-w)
	height := max(0, m.height-h-2) // tabs and help
	m.dashboard.SetSize(width, height)
	m.chat.SetSize(width, height)
	m.habitsModel.SetSize(width, height)
	m.moodModel.SetSize(width, height)
}
