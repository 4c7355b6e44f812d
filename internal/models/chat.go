package models

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies an assistant reply
type Category string

const (
	CategorySupport    Category = "support"
	CategorySuggestion Category = "suggestion"
	CategoryQuestion   Category = "question"
)

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategorySupport, CategorySuggestion, CategoryQuestion:
		return true
	}
	return false
}

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is one entry in a conversation; messages are never mutated once created
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Category  Category  `json:"category,omitempty"` // assistant messages only
	CreatedAt time.Time `json:"created_at"`
}

// ResponseRule maps a set of keywords to a canned reply
type ResponseRule struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Reply    string   `json:"reply" yaml:"reply"`
	Category Category `json:"category" yaml:"category"`
}

func (r *ResponseRule) Validate() error {
	if len(r.Keywords) == 0 {
		return fmt.Errorf("rule must have at least one keyword")
	}
	for _, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("rule keywords cannot be empty")
		}
	}
	if strings.TrimSpace(r.Reply) == "" {
		return fmt.Errorf("rule reply cannot be empty")
	}
	if !r.Category.IsValid() {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	return nil
}

// Matches reports whether any keyword is a substring of the already lower-cased text
func (r *ResponseRule) Matches(normalized string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
