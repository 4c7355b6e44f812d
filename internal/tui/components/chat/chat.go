package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mindcare/internal/companion"
	"github.com/julianstephens/mindcare/internal/models"
)

// ReplyMsg reports that the pending reply was delivered or cancelled
type ReplyMsg struct {
	Delivered bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	categoryColors = map[models.Category]lipgloss.Color{
		models.CategorySupport:    lipgloss.Color("205"),
		models.CategorySuggestion: lipgloss.Color("42"),
		models.CategoryQuestion:   lipgloss.Color("39"),
	}
)

type KeyMap struct {
	Send   key.Binding
	Prompt key.Binding
	Stop   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Prompt: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "quick prompt"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop reply"),
		),
	}
}

type Model struct {
	conv     *companion.Conversation
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	keys     KeyMap
	pending  *companion.PendingReply
	prompt   int // next quick prompt to offer
	err      string
	width    int
}

func New(conv *companion.Conversation, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Share what's on your mind..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = metaStyle

	m := Model{
		conv:     conv,
		input:    ti,
		viewport: viewport.New(width, height),
		spinner:  sp,
		keys:     DefaultKeyMap(),
	}
	m.SetSize(width, height)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// WaitForReply blocks until p is delivered or cancelled
func WaitForReply(p *companion.PendingReply) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-p.Done():
			return ReplyMsg{Delivered: true}
		case <-p.Cancelled():
			return ReplyMsg{}
		}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReplyMsg:
		m.pending = nil
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.pending == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Send):
			return m.send()
		case key.Matches(msg, m.keys.Prompt):
			if prompts := m.conv.QuickPrompts(); len(prompts) > 0 {
				m.input.SetValue(prompts[m.prompt%len(prompts)])
				m.input.CursorEnd()
				m.prompt++
			}
			return m, nil
		case key.Matches(msg, m.keys.Stop):
			m.Cancel()
			return m, nil
		}

		switch msg.Type {
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.pending != nil {
		return m, nil
	}

	p, err := m.conv.Send(context.Background(), text)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.err = ""
	m.pending = p
	m.input.Reset()
	m.refresh()
	return m, tea.Batch(WaitForReply(p), m.spinner.Tick)
}

// Cancel stops the pending reply, if any. The conversation keeps the user's
// message but never receives the cancelled answer.
func (m *Model) Cancel() {
	m.conv.CancelPending()
}

// Typing reports whether a reply is on its way
func (m Model) Typing() bool {
	return m.pending != nil
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

func (m Model) render() string {
	bubbleWidth := max(20, m.width*3/4)
	var b strings.Builder
	for _, msg := range m.conv.Messages() {
		when := humanize.Time(msg.CreatedAt)
		if msg.Sender == models.SenderUser {
			bubble := userStyle.Width(fit(msg.Text, bubbleWidth)).Render(msg.Text)
			meta := metaStyle.Render("you · " + when)
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, bubble, meta)))
		} else {
			tag := lipgloss.NewStyle().Foreground(categoryColors[msg.Category]).Render(string(msg.Category))
			bubble := assistantStyle.Width(fit(msg.Text, bubbleWidth)).Render(msg.Text)
			meta := metaStyle.Render(fmt.Sprintf("companion · %s · ", when)) + tag
			b.WriteString(lipgloss.JoinVertical(lipgloss.Left, bubble, meta))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// fit returns the bubble width for text: its own width plus padding, capped at limit
func fit(text string, limit int) int {
	return min(limit, lipgloss.Width(text)+2)
}

func (m Model) View() string {
	status := ""
	switch {
	case m.pending != nil:
		status = m.spinner.View() + metaStyle.Render(" companion is typing...")
	case m.err != "":
		status = errorStyle.Render(m.err)
	case len(m.conv.Messages()) <= 1:
		status = metaStyle.Render("Try: " + strings.Join(m.conv.QuickPrompts(), " · "))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		status,
		m.input.View(),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(1, height-3)
	m.input.Width = max(10, width-4)
	m.refresh()
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Send, m.keys.Prompt, m.keys.Stop}
}
