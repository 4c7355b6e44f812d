package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindcare/internal/constants"
)

var tabTitles = [constants.TabCount]string{"Dashboard", "Chat", "Habits", "Mood"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDashboard:
		content = m.dashboard.View()
	case constants.StateChat:
		content = m.chat.View()
	case constants.StateHabits:
		content = m.habitsModel.View()
	case constants.StateMood:
		content = m.moodModel.View()
	case constants.StateAddHabit, constants.StateRecordMood:
		content = m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, dangerStyle.Render(m.formError))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.tab() == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
