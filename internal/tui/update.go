package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/habits"
	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/tui/components/chat"
	"github.com/julianstephens/mindcare/internal/tui/components/dashboard"
	habitsview "github.com/julianstephens/mindcare/internal/tui/components/habits"
	moodview "github.com/julianstephens/mindcare/internal/tui/components/mood"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Chat delivery and spinner ticks must reach the chat whatever is on screen
	switch msg.(type) {
	case chat.ReplyMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case constants.StateAddHabit:
		return m.updateAddHabit(msg)
	case constants.StateRecordMood:
		return m.updateRecordMood(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case dashboard.SwitchTabMsg:
		m.switchTab(msg.State)
		return m, nil

	case habitsview.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Category: constants.DefaultHabitCategory,
			Target:   constants.DefaultTargetDaysPerWk,
		}
		m.form = NewHabitForm(m.habitForm)
		m.formError = ""
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitsview.ToggleHabitMsg:
		if _, err := m.ledger.Toggle(msg.ID); err != nil {
			logger.Warn("Failed to toggle habit", "id", msg.ID, "error", err)
		}
		m.refresh()
		return m, nil

	case moodview.RecordMoodMsg:
		m.moodForm = &MoodFormModel{Score: 3}
		m.form = NewMoodForm(m.moodForm)
		m.formError = ""
		m.state = constants.StateRecordMood
		return m, m.form.Init()

	case tea.KeyMsg:
		// In chat, printable keys belong to the input
		if m.state != constants.StateChat {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m.quit()
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
		switch {
		case key.Matches(msg, m.keys.Tab):
			m.switchTab((m.tab() + 1) % constants.TabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTab((m.tab() - 1 + constants.TabCount) % constants.TabCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case constants.StateChat:
		m.chat, cmd = m.chat.Update(msg)
	case constants.StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case constants.StateMood:
		m.moodModel, cmd = m.moodModel.Update(msg)
	}
	return m, cmd
}

// switchTab shows another tab. Leaving the chat cancels a reply still being typed.
func (m *Model) switchTab(state constants.SessionState) {
	if m.state == constants.StateChat && state != constants.StateChat {
		m.chat.Cancel()
	}
	m.state = state
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.chat.Cancel()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.ledger.Add(habits.NewHabit{
			Name:              m.habitForm.Name,
			Description:       m.habitForm.Description,
			Category:          m.habitForm.Category,
			TargetDaysPerWeek: m.habitForm.Target,
		})
		if err != nil {
			// Stay in the form so the user can correct it or cancel with ESC
			m.formError = fmt.Sprintf("Failed to add habit: %v", err)
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.refresh()
		m.state = constants.StateHabits
	case huh.StateAborted:
		m.state = constants.StateHabits
	}
	return m, cmd
}

func (m Model) updateRecordMood(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateMood
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.moodLog.Record(m.moodForm.Score, m.moodForm.Emotions, m.moodForm.Note); err != nil {
			m.formError = fmt.Sprintf("Failed to record mood: %v", err)
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.refresh()
		m.state = constants.StateMood
	case huh.StateAborted:
		m.state = constants.StateMood
	}
	return m, cmd
}
