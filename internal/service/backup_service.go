package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/store"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type documentStore interface {
	Load(user string) (*models.Document, error)
	Save(user string, doc *models.Document) error
}

// BackupService exports the full document and restores uploaded backups.
// Restoring runs the upload through normalization, so arbitrary JSON yields
// a well-formed document rather than an error.
type BackupService struct {
	store     documentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBackupService constructs a BackupService instance.
func NewBackupService(s documentStore, validate *validator.Validate, logger *zap.Logger) *BackupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{store: s, validator: validate, logger: logger}
}

// Export returns the user's document as pretty-printed JSON.
func (s *BackupService) Export(ctx context.Context, user string) ([]byte, error) {
	doc, err := s.store.Load(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load document")
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode backup")
	}
	return payload, nil
}

// Restore replaces the live document with the uploaded backup. It refuses to
// run without explicit confirmation since it overwrites everything.
func (s *BackupService) Restore(ctx context.Context, user string, req dto.RestoreRequest) (*models.Document, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid restore payload")
	}
	if !req.Confirm {
		return nil, appErrors.Clone(appErrors.ErrConfirmRequired, "restore requires explicit confirmation")
	}

	var raw interface{}
	if err := json.Unmarshal(req.Document, &raw); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "backup is not valid JSON")
	}

	doc := store.Normalize(raw)
	if err := s.store.Save(user, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to restore document")
	}

	s.logger.Info("document restored from backup",
		zap.String("user", user),
		zap.Int("klausuren", len(doc.Klausuren)),
		zap.Int("todos", len(doc.Todos)))

	return doc, nil
}
