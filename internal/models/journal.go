package models

import (
	"strings"
	"time"

	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

type JournalEntry struct {
	ID        ID        `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      MoodValue `json:"mood"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (e JournalEntry) RecordDate() string { return e.Date }

func (e *JournalEntry) Validate() error {
	if !utils.ValidateDateFormat(e.Date) {
		return errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.Invalid("title", "title cannot be empty")
	}
	if strings.TrimSpace(e.Content) == "" {
		return errors.Invalid("content", "content cannot be empty")
	}
	if e.Mood == 0 {
		return errors.Invalid("mood", "please select your mood")
	}
	return e.Mood.Validate()
}

// HasTag reports whether the entry carries tag, ignoring case.
func (e *JournalEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// NormalizeTags trims, lowercases and de-duplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
