package repository

import (
	"context"

	"github.com/unidash/uni-dashboard-api/internal/store"
)

// ScheduleRepository accesses the stundenplan_html blob of a user's document.
// The blob is stored and returned verbatim, with no parsing.
type ScheduleRepository struct {
	store *store.DocumentStore
}

// NewScheduleRepository creates a new instance of ScheduleRepository.
func NewScheduleRepository(s *store.DocumentStore) *ScheduleRepository {
	return &ScheduleRepository{store: s}
}

// Get returns the schedule blob.
func (r *ScheduleRepository) Get(ctx context.Context, user string) (string, error) {
	doc, err := r.store.Load(user)
	if err != nil {
		return "", err
	}
	return doc.StundenplanHTML, nil
}

// Set replaces the schedule blob and persists the document.
func (r *ScheduleRepository) Set(ctx context.Context, user, blob string) error {
	doc, err := r.store.Load(user)
	if err != nil {
		return err
	}
	doc.StundenplanHTML = blob
	return r.store.Save(user, doc)
}
