package repository

import (
	"context"

	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/store"
)

// SeminarRepository accesses the seminare collection of a user's document.
type SeminarRepository struct {
	store *store.DocumentStore
}

// NewSeminarRepository creates a new instance of SeminarRepository.
func NewSeminarRepository(s *store.DocumentStore) *SeminarRepository {
	return &SeminarRepository{store: s}
}

// List returns all seminars in insertion order.
func (r *SeminarRepository) List(ctx context.Context, user string) ([]models.Seminar, error) {
	doc, err := r.store.Load(user)
	if err != nil {
		return nil, err
	}
	return doc.Seminare, nil
}

// Replace swaps the seminar collection and persists the document.
func (r *SeminarRepository) Replace(ctx context.Context, user string, seminars []models.Seminar) error {
	doc, err := r.store.Load(user)
	if err != nil {
		return err
	}
	if seminars == nil {
		seminars = []models.Seminar{}
	}
	doc.Seminare = seminars
	return r.store.Save(user, doc)
}
