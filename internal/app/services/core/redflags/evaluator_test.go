package redflags

import (
	"testing"

	"codexrfa-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagSnapshot() *models.FormSnapshot {
	min := 5.0
	return &models.FormSnapshot{
		Form: models.Form{ID: "fever_rfa", Version: 1, DefaultLanguage: "en"},
		RedFlags: map[string]*models.RedFlag{
			"prolonged_fever": {
				ID:                     "prolonged_fever",
				FormID:                 "fever_rfa",
				Severity:               "high",
				DefaultPatientResponse: "See a doctor today.",
				DoctorAtAGlance:        "Fever lasting 5+ days.",
				PatientVideoURL:        "education/prolonged_fever.mp4",
				Trigger:                models.Predicate{Op: models.PredicateInRange, QuestionID: "q1", Min: &min},
				Translations: map[string]models.RedFlagTranslation{
					"hi": {PatientResponse: "Aaj hi doctor se milein."},
				},
			},
			"rash_with_fever": {
				ID:       "rash_with_fever",
				FormID:   "fever_rfa",
				Severity: "high",
				Trigger: models.Predicate{
					Op:         models.PredicateMemberOf,
					QuestionID: "q2",
					Values:     []string{"q2_rash"},
				},
			},
		},
		RedFlagOrder: []string{"prolonged_fever", "rash_with_fever"},
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("prolonged fever triggers the duration flag only", func(t *testing.T) {
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "7"})
		answers.Append(models.Answer{QuestionID: "q2", Values: []string{"q2_none"}})

		triggered := Evaluate(flagSnapshot(), "en", answers)
		require.Len(t, triggered, 1)
		assert.Equal(t, "prolonged_fever", triggered[0].RedFlagID)
	})

	t.Run("short fever triggers nothing", func(t *testing.T) {
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "2"})

		triggered := Evaluate(flagSnapshot(), "en", answers)
		assert.Empty(t, triggered)
	})

	t.Run("flags are independent and ordered deterministically", func(t *testing.T) {
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "7"})
		answers.Append(models.Answer{QuestionID: "q2", Values: []string{"q2_rash", "q2_vomit"}})

		triggered := Evaluate(flagSnapshot(), "en", answers)
		require.Len(t, triggered, 2)
		assert.Equal(t, "prolonged_fever", triggered[0].RedFlagID)
		assert.Equal(t, "rash_with_fever", triggered[1].RedFlagID)
	})

	t.Run("translated language is preferred", func(t *testing.T) {
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "7"})

		triggered := Evaluate(flagSnapshot(), "hi", answers)
		require.Len(t, triggered, 1)
		assert.Equal(t, "Aaj hi doctor se milein.", triggered[0].PatientResponse)
		assert.False(t, triggered[0].FallbackLanguage)
	})

	t.Run("missing translation falls back with marking instead of dropping", func(t *testing.T) {
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "7"})

		triggered := Evaluate(flagSnapshot(), "ta", answers)
		require.Len(t, triggered, 1)
		assert.True(t, triggered[0].FallbackLanguage)
		assert.Equal(t, "See a doctor today.", triggered[0].PatientResponse)
		assert.Equal(t, "Fever lasting 5+ days.", triggered[0].DoctorAtAGlance)
	})

	t.Run("partial translation keeps default for the missing field", func(t *testing.T) {
		flag := flagSnapshot().RedFlags["prolonged_fever"]
		resolved := Resolve(flag, "hi")
		assert.Equal(t, "Aaj hi doctor se milein.", resolved.PatientResponse)
		assert.Equal(t, "Fever lasting 5+ days.", resolved.DoctorAtAGlance)
	})
}
