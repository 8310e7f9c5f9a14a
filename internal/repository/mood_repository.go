package repository

import (
	"context"

	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/store"
)

// MoodRepository accesses the mood log of a user's document.
type MoodRepository struct {
	store *store.DocumentStore
}

// NewMoodRepository creates a new instance of MoodRepository.
func NewMoodRepository(s *store.DocumentStore) *MoodRepository {
	return &MoodRepository{store: s}
}

// List returns all mood entries in insertion order.
func (r *MoodRepository) List(ctx context.Context, user string) ([]models.MoodEntry, error) {
	doc, err := r.store.Load(user)
	if err != nil {
		return nil, err
	}
	return doc.Mood, nil
}

// Replace swaps the mood log and persists the document.
func (r *MoodRepository) Replace(ctx context.Context, user string, entries []models.MoodEntry) error {
	doc, err := r.store.Load(user)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	doc.Mood = entries
	return r.store.Save(user, doc)
}
