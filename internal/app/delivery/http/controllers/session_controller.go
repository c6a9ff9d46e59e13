package controllers

import (
	"context"
	"net/http"
	"time"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/exceptions"
	"codexrfa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
}

func NewSessionController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
	}
}

func (ctrl *SessionController) Start(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.StartSession{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DoctorSlug = chi.URLParam(r, constvars.URLParamDoctorSlug)

	response, err := ctrl.SessionUsecase.StartSession(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartSessionSuccessMessage, response)
}

func (ctrl *SessionController) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID, ok := r.Context().Value(constvars.ContextSessionIDKey).(string)
	if !ok || sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := &requests.AdvanceSession{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.SessionUsecase.AdvanceSession(ctx, sessionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.AdvanceSessionSuccessMessage
	if response.Completed {
		message = constvars.CompleteSessionSuccessMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}
