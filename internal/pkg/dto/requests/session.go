package requests

// StartSession opens a traversal session against a doctor's shareable
// slug. The identifying fields are consumed by the identity deriver and
// discarded; they are never persisted or logged.
type StartSession struct {
	DoctorSlug string `json:"-" validate:"required"`
	FormID     string `json:"form_id" validate:"required"`
	Language   string `json:"language" validate:"required,language_code"`

	DateOfBirth      string `json:"date_of_birth" validate:"required,iso_date"`
	GuardianInitials string `json:"guardian_initials" validate:"required,initials"`
}

// AdvanceSession submits the answer to the session's pending question.
type AdvanceSession struct {
	QuestionID string   `json:"question_id" validate:"required"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
	FreeText   string   `json:"free_text,omitempty"`
}
