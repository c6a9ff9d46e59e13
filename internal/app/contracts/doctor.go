package contracts

import (
	"context"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindBySlug(ctx context.Context, slug string) (*models.Doctor, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type DoctorUsecase interface {
	// RegisterDoctor creates the doctor with a unique shareable slug and
	// stores the shareable patient-start link.
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*models.Doctor, error)
	FindDoctorBySlug(ctx context.Context, slug string) (*models.Doctor, error)
}
