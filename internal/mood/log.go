// Package mood keeps the mood log and derives averages and trend direction.
package mood

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindcare/internal/constants"
	"github.com/julianstephens/mindcare/internal/logger"
	"github.com/julianstephens/mindcare/internal/models"
)

// Log is an append-only, chronologically ordered list of mood entries.
// It is not safe for concurrent use.
type Log struct {
	entries []models.MoodEntry
	newID   func() string
	now     func() time.Time
}

type Option func(*Log)

// WithIDFunc overrides entry id generation
func WithIDFunc(fn func() string) Option {
	return func(l *Log) { l.newID = fn }
}

// WithNow overrides the clock used to date new entries
func WithNow(fn func() time.Time) Option {
	return func(l *Log) { l.now = fn }
}

// NewLog creates an empty mood log
func NewLog(opts ...Option) *Log {
	l := &Log{
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record appends an entry dated today. Several entries per day are allowed.
func (l *Log) Record(score int, emotions []string, note string) (models.MoodEntry, error) {
	if err := models.ValidateMoodScore(score); err != nil {
		return models.MoodEntry{}, err
	}

	now := l.now()
	entry := models.MoodEntry{
		ID:        l.newID(),
		Date:      now.Format(constants.DateFormat),
		Score:     score,
		Emotions:  dedupeEmotions(emotions),
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
	}
	l.entries = append(l.entries, entry)

	logger.Debug("Mood recorded", "id", entry.ID, "score", score, "emotions", len(entry.Emotions))
	return entry, nil
}

// Import adds existing entries, e.g. sample data, keeping the log ordered by
// date. Either every entry is accepted or none is.
func (l *Log) Import(entries []models.MoodEntry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}
	for _, e := range entries {
		e.Emotions = dedupeEmotions(e.Emotions)
		if e.ID == "" {
			e.ID = l.newID()
		}
		l.entries = append(l.entries, e)
	}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date < l.entries[j].Date
	})
	return nil
}

// Entries returns the log in chronological order
func (l *Log) Entries() []models.MoodEntry {
	out := make([]models.MoodEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// List returns the log newest first, for display
func (l *Log) List() []models.MoodEntry {
	out := make([]models.MoodEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Recent returns up to n entries, newest first
func (l *Log) Recent(n int) []models.MoodEntry {
	list := l.List()
	if n >= 0 && n < len(list) {
		list = list[:n]
	}
	return list
}

// Len returns the number of entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Stats computes statistics over the whole log
func (l *Log) Stats() (models.MoodStats, error) {
	return Stats(l.entries)
}

// dedupeEmotions drops blanks and case-insensitive repeats, keeping first-seen order
func dedupeEmotions(emotions []string) []string {
	seen := make(map[string]bool, len(emotions))
	out := make([]string, 0, len(emotions))
	for _, e := range emotions {
		e = strings.TrimSpace(e)
		key := strings.ToLower(e)
		if e == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
