package records

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
)

// JournalInput is a submitted journal form. An empty ID creates a new entry.
type JournalInput struct {
	ID      models.ID
	Date    string
	Title   string
	Content string
	Mood    models.MoodValue
	Tags    []string
}

type JournalStore struct{ *base }

func newJournal() []models.JournalEntry { return []models.JournalEntry{} }

// All returns entries newest first, as stored.
func (s *JournalStore) All() ([]models.JournalEntry, error) {
	entries, err := load(s.p, constants.KeyJournalEntries, newJournal)
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return entries, err
}

func (s *JournalStore) Get(id models.ID) (models.JournalEntry, error) {
	entries, err := s.All()
	if err != nil {
		return models.JournalEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, fmt.Errorf("journal entry %s: %w", id, errors.ErrNotFound)
}

// Save inserts a new entry at the front, or edits the entry with in.ID in
// place keeping its CreatedAt.
func (s *JournalStore) Save(in JournalInput) (models.JournalEntry, error) {
	if in.Date == "" {
		in.Date = s.today()
	}
	now := s.now().UTC()
	entry := models.JournalEntry{
		ID:        in.ID,
		Date:      in.Date,
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Mood:      in.Mood,
		Tags:      models.NormalizeTags(in.Tags),
		CreatedAt: now,
	}
	if err := entry.Validate(); err != nil {
		return models.JournalEntry{}, err
	}

	entries, err := s.All()
	if err != nil {
		return models.JournalEntry{}, err
	}

	if entry.ID == "" {
		entry.ID = models.NewID()
		entries = append([]models.JournalEntry{entry}, entries...)
	} else {
		idx := -1
		for i, e := range entries {
			if e.ID == entry.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.JournalEntry{}, fmt.Errorf("journal entry %s: %w", entry.ID, errors.ErrNotFound)
		}
		entry.CreatedAt = entries[idx].CreatedAt
		entry.UpdatedAt = now
		entries[idx] = entry
	}

	if err := save(s.p, constants.KeyJournalEntries, entries); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (s *JournalStore) Delete(id models.ID) error {
	entries, err := s.All()
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return save(s.p, constants.KeyJournalEntries, entries)
		}
	}
	return fmt.Errorf("journal entry %s: %w", id, errors.ErrNotFound)
}

// Search matches term case-insensitively against title and content, and
// keeps entries carrying any of tags. Empty filters match everything.
func (s *JournalStore) Search(term string, tags []string) ([]models.JournalEntry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Title), term) &&
			!strings.Contains(strings.ToLower(e.Content), term) {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(&e, tags) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Tags lists every tag in use, in first-seen order.
func (s *JournalStore) Tags() ([]string, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	var all []string
	for _, e := range entries {
		all = append(all, e.Tags...)
	}
	return models.NormalizeTags(all), nil
}

func hasAnyTag(e *models.JournalEntry, tags []string) bool {
	for _, t := range tags {
		if e.HasTag(t) {
			return true
		}
	}
	return false
}
