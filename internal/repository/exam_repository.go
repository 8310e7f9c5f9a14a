package repository

import (
	"context"

	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/store"
)

// ExamRepository accesses the klausuren collection of a user's document.
type ExamRepository struct {
	store *store.DocumentStore
}

// NewExamRepository creates a new instance of ExamRepository.
func NewExamRepository(s *store.DocumentStore) *ExamRepository {
	return &ExamRepository{store: s}
}

// List returns all exam records in insertion order.
func (r *ExamRepository) List(ctx context.Context, user string) ([]models.Exam, error) {
	doc, err := r.store.Load(user)
	if err != nil {
		return nil, err
	}
	return doc.Klausuren, nil
}

// Replace swaps the exam collection and persists the document.
func (r *ExamRepository) Replace(ctx context.Context, user string, exams []models.Exam) error {
	doc, err := r.store.Load(user)
	if err != nil {
		return err
	}
	if exams == nil {
		exams = []models.Exam{}
	}
	doc.Klausuren = exams
	return r.store.Save(user, doc)
}
