package repository

import (
	"context"

	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/store"
)

// StudyPlanRepository accesses the lernplan collection of a user's document.
type StudyPlanRepository struct {
	store *store.DocumentStore
}

// NewStudyPlanRepository creates a new instance of StudyPlanRepository.
func NewStudyPlanRepository(s *store.DocumentStore) *StudyPlanRepository {
	return &StudyPlanRepository{store: s}
}

// List returns all study plan entries in insertion order.
func (r *StudyPlanRepository) List(ctx context.Context, user string) ([]models.StudyPlanEntry, error) {
	doc, err := r.store.Load(user)
	if err != nil {
		return nil, err
	}
	return doc.Lernplan, nil
}

// Replace swaps the study plan collection and persists the document.
func (r *StudyPlanRepository) Replace(ctx context.Context, user string, entries []models.StudyPlanEntry) error {
	doc, err := r.store.Load(user)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []models.StudyPlanEntry{}
	}
	doc.Lernplan = entries
	return r.store.Save(user, doc)
}
