package chat

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindcare/internal/companion"
)

const delay = 1500 * time.Millisecond

func newTestModel(t *testing.T) (Model, *companion.Conversation, *companion.ManualClock) {
	t.Helper()
	clock := companion.NewManualClock(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	conv := companion.NewConversation(companion.NewClassifier(nil),
		companion.WithClock(clock),
		companion.WithDelay(delay),
	)
	return New(conv, 80, 20), conv, clock
}

func typeText(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestSendAndDeliver(t *testing.T) {
	m, conv, clock := newTestModel(t)

	m = typeText(m, "I can't sleep")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after sending")
	}
	if !m.Typing() {
		t.Fatal("expected the model to be waiting for a reply")
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("input not cleared, got %q", got)
	}
	if got := len(conv.Messages()); got != 2 {
		t.Fatalf("expected 2 messages, got %d", got)
	}

	clock.Advance(delay)
	msg := WaitForReply(m.pending)()
	reply, ok := msg.(ReplyMsg)
	if !ok || !reply.Delivered {
		t.Fatalf("expected delivered reply, got %#v", msg)
	}

	m, _ = m.Update(reply)
	if m.Typing() {
		t.Error("model still typing after delivery")
	}
	if got := len(conv.Messages()); got != 3 {
		t.Errorf("expected 3 messages, got %d", got)
	}
}

func TestSendWhileTypingIgnored(t *testing.T) {
	m, conv, _ := newTestModel(t)

	m = typeText(m, "hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "again")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("expected no command while a reply is pending")
	}
	if got := len(conv.Messages()); got != 2 {
		t.Errorf("expected 2 messages, got %d", got)
	}
}

func TestEmptyInputNotSent(t *testing.T) {
	m, conv, _ := newTestModel(t)

	m = typeText(m, "   ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Typing() {
		t.Error("blank input should not be sent")
	}
	if got := len(conv.Messages()); got != 1 {
		t.Errorf("expected only the greeting, got %d messages", got)
	}
}

func TestStopCancelsReply(t *testing.T) {
	m, conv, clock := newTestModel(t)

	m = typeText(m, "I feel anxious")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	msg := WaitForReply(m.pending)()
	if reply, ok := msg.(ReplyMsg); !ok || reply.Delivered {
		t.Fatalf("expected cancelled reply, got %#v", msg)
	}
	m, _ = m.Update(msg)

	clock.Advance(delay)
	if got := len(conv.Messages()); got != 2 {
		t.Errorf("cancelled reply was delivered: %d messages", got)
	}
	if m.Typing() || conv.Typing() {
		t.Error("expected no pending reply after cancel")
	}
}

func TestQuickPromptCycles(t *testing.T) {
	m, conv, _ := newTestModel(t)
	prompts := conv.QuickPrompts()
	if len(prompts) < 2 {
		t.Skip("need at least two quick prompts")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := m.input.Value(); got != prompts[0] {
		t.Errorf("first prompt = %q, want %q", got, prompts[0])
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := m.input.Value(); got != prompts[1] {
		t.Errorf("second prompt = %q, want %q", got, prompts[1])
	}
}
