package doctors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/exceptions"
	"codexrfa-service/internal/pkg/utils"
)

type DoctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	InternalConfig   *config.InternalConfig
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	internalConfig *config.InternalConfig,
) contracts.DoctorUsecase {
	return &DoctorUsecase{
		DoctorRepository: doctorRepository,
		InternalConfig:   internalConfig,
	}
}

// RegisterDoctor creates the doctor with a slug derived from name and
// clinic. On a slug collision a numeric suffix is appended, counting up
// until a free slug is found.
func (uc *DoctorUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*models.Doctor, error) {
	utils.SanitizeRegisterDoctorRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	slug, err := uc.uniqueSlug(ctx, request.Name, request.ClinicName)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		Name:           request.Name,
		Email:          request.Email,
		ClinicName:     request.ClinicName,
		City:           request.City,
		Specialization: request.Specialization,
		ShareableSlug:  slug,
		ShareableLink:  fmt.Sprintf("%s/d/%s", strings.TrimRight(uc.InternalConfig.App.BaseURL, "/"), slug),
		CreatedAt:      time.Now().UTC(),
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID
	return doctor, nil
}

func (uc *DoctorUsecase) FindDoctorBySlug(ctx context.Context, slug string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func (uc *DoctorUsecase) uniqueSlug(ctx context.Context, name, clinicName string) (string, error) {
	base := utils.Slugify(name + " " + clinicName)
	if base == "" {
		base = "doctor"
	}

	slug := base
	for counter := 1; ; counter++ {
		exists, err := uc.DoctorRepository.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
