package requests

type RegisterDoctor struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email"`
	ClinicName     string `json:"clinic_name" validate:"required,max=255"`
	City           string `json:"city" validate:"max=128"`
	Specialization string `json:"specialization" validate:"max=255"`
}
