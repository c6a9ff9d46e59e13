package catalog

import (
	"context"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"
)

type CatalogUsecase struct {
	CatalogRepository contracts.CatalogRepository
	SessionStore      contracts.SessionStore
	InternalConfig    *config.InternalConfig
}

func NewCatalogUsecase(
	catalogRepository contracts.CatalogRepository,
	sessionStore contracts.SessionStore,
	internalConfig *config.InternalConfig,
) contracts.CatalogUsecase {
	return &CatalogUsecase{
		CatalogRepository: catalogRepository,
		SessionStore:      sessionStore,
		InternalConfig:    internalConfig,
	}
}

func (uc *CatalogUsecase) ListLanguages(ctx context.Context) ([]models.Language, error) {
	return uc.CatalogRepository.FindLanguages(ctx)
}

// ListForms returns every form with its name resolved for languageCode,
// falling back to the default language when no translation exists.
func (uc *CatalogUsecase) ListForms(ctx context.Context, languageCode string) ([]models.Form, error) {
	forms, err := uc.CatalogRepository.FindForms(ctx)
	if err != nil {
		return nil, err
	}
	if languageCode == "" {
		languageCode = constvars.DefaultLanguageCode
	}
	for i := range forms {
		if _, ok := forms[i].Names[languageCode]; !ok {
			fallback := forms[i].DefaultLanguage
			if fallback == "" {
				fallback = constvars.DefaultLanguageCode
			}
			if name, ok := forms[i].Names[fallback]; ok {
				if forms[i].Names == nil {
					forms[i].Names = map[string]string{}
				}
				forms[i].Names[languageCode] = name
			}
		}
	}
	return forms, nil
}

// GetFormSnapshot loads the current catalog rows for formID, assembles them
// and validates the traversal invariants. The result is cached under the
// form version so sessions pinned to it keep resolving the same definition.
func (uc *CatalogUsecase) GetFormSnapshot(ctx context.Context, formID string) (*models.FormSnapshot, error) {
	form, err := uc.CatalogRepository.FindFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, exceptions.ErrFormNotFound(nil)
	}

	snapshot, err := uc.buildFromStorage(ctx, form)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.Session.SnapshotTTLHours) * time.Hour
	if err := uc.SessionStore.SaveSnapshot(ctx, snapshot, ttl); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetPinnedSnapshot serves the exact form version a session pinned at start.
// The cache is authoritative for the common case; on a miss the snapshot is
// rebuilt from storage, which only succeeds while the stored version still
// matches the pinned one.
func (uc *CatalogUsecase) GetPinnedSnapshot(ctx context.Context, formID string, version int64) (*models.FormSnapshot, error) {
	snapshot, err := uc.SessionStore.GetSnapshot(ctx, formID, version)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		return snapshot, nil
	}

	form, err := uc.CatalogRepository.FindFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil || form.Version != version {
		return nil, exceptions.ErrFormNotFound(nil)
	}

	snapshot, err = uc.buildFromStorage(ctx, form)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.Session.SnapshotTTLHours) * time.Hour
	if err := uc.SessionStore.SaveSnapshot(ctx, snapshot, ttl); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (uc *CatalogUsecase) GetRedFlag(ctx context.Context, redFlagID string) (*models.RedFlag, error) {
	flag, err := uc.CatalogRepository.FindRedFlagByID(ctx, redFlagID)
	if err != nil {
		return nil, err
	}
	if flag == nil {
		return nil, exceptions.ErrRedFlagNotFound(nil)
	}
	return flag, nil
}

func (uc *CatalogUsecase) buildFromStorage(ctx context.Context, form *models.Form) (*models.FormSnapshot, error) {
	questions, err := uc.CatalogRepository.FindQuestionsByFormID(ctx, form.ID)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]string, 0, len(questions))
	for _, question := range questions {
		questionIDs = append(questionIDs, question.ID)
	}
	options, err := uc.CatalogRepository.FindOptionsByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	redFlags, err := uc.CatalogRepository.FindRedFlagsByFormID(ctx, form.ID)
	if err != nil {
		return nil, err
	}

	return BuildSnapshot(form, questions, options, redFlags)
}
