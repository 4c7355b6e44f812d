package companion

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindcare/internal/constants"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/models"
)

// Conversation owns the append-only message log of one chat session. The
// assistant reply is appended from the delivery timer, so the log is guarded.
type Conversation struct {
	classifier *Classifier
	clock      Clock
	delay      time.Duration
	newID      func() string

	mu       sync.Mutex
	messages []models.ChatMessage
	pending  *PendingReply
}

type ConversationOption func(*Conversation)

// WithClock sets the clock used for timestamps and the typing delay
func WithClock(clock Clock) ConversationOption {
	return func(c *Conversation) { c.clock = clock }
}

// WithDelay sets how long the assistant "types" before replying
func WithDelay(d time.Duration) ConversationOption {
	return func(c *Conversation) { c.delay = d }
}

// WithIDFunc overrides message id generation
func WithIDFunc(fn func() string) ConversationOption {
	return func(c *Conversation) { c.newID = fn }
}

// NewConversation starts a conversation opened by the assistant's greeting
func NewConversation(classifier *Classifier, opts ...ConversationOption) *Conversation {
	c := &Conversation{
		classifier: classifier,
		clock:      SystemClock,
		delay:      constants.DefaultTypingDelay,
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}

	if greeting := classifier.Greeting(); greeting != "" {
		c.messages = append(c.messages, models.ChatMessage{
			ID:        c.newID(),
			Text:      greeting,
			Sender:    models.SenderAssistant,
			Category:  models.CategorySupport,
			CreatedAt: c.clock.Now(),
		})
	}
	return c
}

// Send records the user's message and schedules the assistant's reply. Only
// one reply may be outstanding; ending ctx cancels it.
func (c *Conversation) Send(ctx context.Context, text string) (*PendingReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.InvalidInput("message cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return nil, apperrors.InvalidInput("a reply is already pending")
	}

	pending, err := c.classifier.ClassifyWithDelay(ctx, c.clock, text, c.delay, c.appendReply, c.clearPending)
	if err != nil {
		return nil, err
	}

	c.messages = append(c.messages, models.ChatMessage{
		ID:        c.newID(),
		Text:      text,
		Sender:    models.SenderUser,
		CreatedAt: c.clock.Now(),
	})
	c.pending = pending
	logger.Debug("Message sent", "category", pending.Reply().Category, "delay", c.delay)
	return pending, nil
}

func (c *Conversation) appendReply(r Reply) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, models.ChatMessage{
		ID:        c.newID(),
		Text:      r.Text,
		Sender:    models.SenderAssistant,
		Category:  r.Category,
		CreatedAt: c.clock.Now(),
	})
	c.pending = nil
}

func (c *Conversation) clearPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// Messages returns a copy of the log in chronological order
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Typing reports whether a reply is waiting to be delivered
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// QuickPrompts returns the canned messages offered by the classifier
func (c *Conversation) QuickPrompts() []string {
	return c.classifier.QuickPrompts()
}

// CancelPending cancels the outstanding reply, if any, leaving the log as it
// was. The conversation stays usable.
func (c *Conversation) CancelPending() bool {
	c.mu.Lock()
	pending := c.pending
	c.mu.Unlock()

	if pending == nil {
		return false
	}
	return pending.Cancel()
}

// Close ends the session, cancelling any outstanding reply
func (c *Conversation) Close() {
	c.CancelPending()
}
