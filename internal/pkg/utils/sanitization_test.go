package utils

import (
	"testing"

	"codexrfa-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStartSessionRequest(t *testing.T) {
	t.Run("Language Lowercased And Trimmed", func(t *testing.T) {
		request := &requests.StartSession{
			FormID:           "  fever_basic  ",
			Language:         "  EN  ",
			DateOfBirth:      " 2019-03-01 ",
			GuardianInitials: " JD ",
		}

		SanitizeStartSessionRequest(request)

		assert.Equal(t, "fever_basic", request.FormID)
		assert.Equal(t, "en", request.Language)
		assert.Equal(t, "2019-03-01", request.DateOfBirth)
		assert.Equal(t, "JD", request.GuardianInitials, "initials case is the deriver's concern")
	})
}

func TestSanitizeAdvanceSessionRequest(t *testing.T) {
	request := &requests.AdvanceSession{
		QuestionID: " q1 ",
		Value:      " 7 ",
		Values:     []string{" opt_a ", "opt_b "},
		FreeText:   "  some note  ",
	}

	SanitizeAdvanceSessionRequest(request)

	assert.Equal(t, "q1", request.QuestionID)
	assert.Equal(t, "7", request.Value)
	assert.Equal(t, []string{"opt_a", "opt_b"}, request.Values)
	assert.Equal(t, "some note", request.FreeText)
}

func TestSlugify(t *testing.T) {
	t.Run("Name And Clinic", func(t *testing.T) {
		assert.Equal(t, "dr-asha-rao-sunrise-clinic", Slugify("Dr. Asha Rao-Sunrise Clinic"))
	})

	t.Run("Symbols Collapse", func(t *testing.T) {
		assert.Equal(t, "a-b", Slugify("  A___&&&B  "))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", Slugify("!!!"))
	})
}
