package controllers

import (
	"context"
	"net/http"
	"time"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/services/core/redflags"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/responses"
	"codexrfa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RedFlagController serves the doctor-facing at-a-glance content for a
// single red flag, localized on demand.
type RedFlagController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
	MediaStorage   contracts.MediaStorage
}

func NewRedFlagController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase, mediaStorage contracts.MediaStorage) *RedFlagController {
	return &RedFlagController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
		MediaStorage:   mediaStorage,
	}
}

func (ctrl *RedFlagController) Glance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	redFlagID := chi.URLParam(r, constvars.URLParamRedFlagID)
	languageCode := r.URL.Query().Get(constvars.URLQueryParamLanguage)
	if languageCode == "" {
		languageCode = constvars.DefaultLanguageCode
	}

	flag, err := ctrl.CatalogUsecase.GetRedFlag(ctx, redFlagID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	resolved := redflags.Resolve(flag, languageCode)
	videoURL, err := ctrl.MediaStorage.PresignEducationMedia(ctx, resolved.DoctorVideoURL)
	if err != nil {
		ctrl.Log.Warn("failed to presign doctor education media", zap.Error(err))
		videoURL = ""
	}

	view := responses.RedFlagGlanceView{
		RedFlagID:        resolved.RedFlagID,
		Severity:         resolved.Severity,
		DoctorAtAGlance:  resolved.DoctorAtAGlance,
		DoctorVideoURL:   videoURL,
		FallbackLanguage: resolved.FallbackLanguage,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindRedFlagSuccessMessage, view)
}
