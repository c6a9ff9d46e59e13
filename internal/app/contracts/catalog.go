package contracts

import (
	"context"

	"codexrfa-service/internal/app/models"
)

// CatalogRepository reads raw catalog rows from storage. Rows are
// assembled and validated into snapshots by the catalog usecase.
type CatalogRepository interface {
	FindLanguages(ctx context.Context) ([]models.Language, error)
	FindForms(ctx context.Context) ([]models.Form, error)
	FindFormByID(ctx context.Context, formID string) (*models.Form, error)
	FindQuestionsByFormID(ctx context.Context, formID string) ([]models.Question, error)
	FindOptionsByQuestionIDs(ctx context.Context, questionIDs []string) ([]models.Option, error)
	FindRedFlagsByFormID(ctx context.Context, formID string) ([]models.RedFlag, error)
	FindRedFlagByID(ctx context.Context, redFlagID string) (*models.RedFlag, error)
}

// CatalogUsecase serves immutable, version-pinned form snapshots.
type CatalogUsecase interface {
	ListLanguages(ctx context.Context) ([]models.Language, error)
	ListForms(ctx context.Context, languageCode string) ([]models.Form, error)
	// GetFormSnapshot resolves and validates the current definition of
	// formID. The returned snapshot is immutable and safe to pin for the
	// lifetime of a session.
	GetFormSnapshot(ctx context.Context, formID string) (*models.FormSnapshot, error)
	// GetPinnedSnapshot returns the snapshot a session pinned at start,
	// from cache when possible.
	GetPinnedSnapshot(ctx context.Context, formID string, version int64) (*models.FormSnapshot, error)
	GetRedFlag(ctx context.Context, redFlagID string) (*models.RedFlag, error)
}
