package controllers

import (
	"context"
	"net/http"
	"time"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/dto/responses"
	"codexrfa-service/internal/pkg/exceptions"
	"codexrfa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.RegisterDoctor{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	doctor, err := ctrl.DoctorUsecase.RegisterDoctor(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, doctorView(doctor))
}

func (ctrl *DoctorController) FindBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slug := chi.URLParam(r, constvars.URLParamDoctorSlug)

	doctor, err := ctrl.DoctorUsecase.FindDoctorBySlug(ctx, slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindDoctorSuccessMessage, doctorView(doctor))
}

func doctorView(doctor *models.Doctor) *responses.DoctorView {
	return &responses.DoctorView{
		Name:           doctor.Name,
		ClinicName:     doctor.ClinicName,
		City:           doctor.City,
		Specialization: doctor.Specialization,
		ShareableSlug:  doctor.ShareableSlug,
		ShareableLink:  doctor.ShareableLink,
	}
}
