package utils

import (
	"regexp"
	"strings"

	"codexrfa-service/internal/pkg/dto/requests"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugEdgeDashes   = regexp.MustCompile(`^-+|-+$`)
)

func SanitizeRegisterDoctorRequest(request *requests.RegisterDoctor) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.ClinicName = strings.TrimSpace(request.ClinicName)
	request.City = strings.TrimSpace(request.City)
	request.Specialization = strings.TrimSpace(request.Specialization)
}

func SanitizeStartSessionRequest(request *requests.StartSession) {
	request.FormID = strings.TrimSpace(request.FormID)
	request.Language = strings.ToLower(strings.TrimSpace(request.Language))
	request.DateOfBirth = strings.TrimSpace(request.DateOfBirth)
	request.GuardianInitials = strings.TrimSpace(request.GuardianInitials)
}

func SanitizeAdvanceSessionRequest(request *requests.AdvanceSession) {
	request.QuestionID = strings.TrimSpace(request.QuestionID)
	request.Value = strings.TrimSpace(request.Value)
	for i, value := range request.Values {
		request.Values[i] = strings.TrimSpace(value)
	}
	request.FreeText = strings.TrimSpace(request.FreeText)
}

// Slugify lowercases text and collapses every non-alphanumeric run into a
// single dash, for doctor shareable slugs.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugEdgeDashes.ReplaceAllString(slug, "")
	return slug
}
