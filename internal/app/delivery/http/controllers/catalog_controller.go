package controllers

import (
	"context"
	"net/http"
	"time"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/responses"
	"codexrfa-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) ListLanguages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	languages, err := ctrl.CatalogUsecase.ListLanguages(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	views := make([]responses.LanguageView, 0, len(languages))
	for _, language := range languages {
		views = append(views, responses.LanguageView{Code: language.Code, Name: language.Name})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListLanguagesSuccessMessage, views)
}

func (ctrl *CatalogController) ListForms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	languageCode := r.URL.Query().Get(constvars.URLQueryParamLanguage)
	if languageCode == "" {
		languageCode = constvars.DefaultLanguageCode
	}

	forms, err := ctrl.CatalogUsecase.ListForms(ctx, languageCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	views := make([]responses.FormView, 0, len(forms))
	for _, form := range forms {
		views = append(views, responses.FormView{
			ID:        form.ID,
			Name:      form.Names[languageCode],
			Languages: form.LanguageCodes,
		})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFormsSuccessMessage, views)
}
