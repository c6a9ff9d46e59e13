package catalog

import (
	"testing"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *models.Form {
	return &models.Form{
		ID:              "fever_rfa",
		Version:         3,
		DefaultLanguage: "en",
		LanguageCodes:   []string{"en", "hi"},
		RootQuestionID:  "q1",
	}
}

func validQuestions() []models.Question {
	return []models.Question{
		{
			ID:         "q1",
			FormID:     "fever_rfa",
			SequenceNo: 1,
			Kind:       constvars.AnswerKindNumeric,
			Required:   true,
			Rules: []models.SuccessorRule{
				{
					Priority:       1,
					When:           models.Predicate{Op: models.PredicateInRange, QuestionID: "q1", Min: ptrFloat(5), Max: nil},
					NextQuestionID: "q2",
				},
			},
			DefaultEnd: true,
		},
		{
			ID:         "q2",
			FormID:     "fever_rfa",
			SequenceNo: 2,
			Kind:       constvars.AnswerKindSelect,
			Required:   true,
			OptionIDs:  []string{"q2_yes", "q2_no"},
			DefaultEnd: true,
		},
	}
}

func validOptions() []models.Option {
	return []models.Option{
		{ID: "q2_yes", QuestionID: "q2", SequenceNo: 1, IsRedFlagOption: true},
		{ID: "q2_no", QuestionID: "q2", SequenceNo: 2},
	}
}

func ptrFloat(v float64) *float64 { return &v }

func TestBuildSnapshot(t *testing.T) {
	t.Run("valid catalog assembles with deterministic order", func(t *testing.T) {
		snapshot, err := BuildSnapshot(validForm(), validQuestions(), validOptions(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"q1", "q2"}, snapshot.QuestionOrder)
		assert.Equal(t, 2, snapshot.QuestionCount())
		assert.NotNil(t, snapshot.Option("q2_yes"))
	})

	t.Run("missing root question fails", func(t *testing.T) {
		form := validForm()
		form.RootQuestionID = "missing"
		_, err := BuildSnapshot(form, validQuestions(), validOptions(), nil)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusInternalServerError))
	})

	t.Run("question without default successor fails", func(t *testing.T) {
		questions := validQuestions()
		questions[1].DefaultEnd = false
		questions[1].DefaultNextID = ""
		_, err := BuildSnapshot(validForm(), questions, validOptions(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default successor")
	})

	t.Run("rule targeting unknown question fails", func(t *testing.T) {
		questions := validQuestions()
		questions[0].Rules[0].NextQuestionID = "ghost"
		_, err := BuildSnapshot(validForm(), questions, validOptions(), nil)
		require.Error(t, err)
	})

	t.Run("option owned by another question fails", func(t *testing.T) {
		options := validOptions()
		options[0].QuestionID = "q1"
		_, err := BuildSnapshot(validForm(), validQuestions(), options, nil)
		require.Error(t, err)
	})

	t.Run("successor cycle fails", func(t *testing.T) {
		questions := validQuestions()
		questions[1].DefaultEnd = false
		questions[1].DefaultNextID = "q1"
		_, err := BuildSnapshot(validForm(), questions, validOptions(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("duplicate question identifier fails", func(t *testing.T) {
		questions := append(validQuestions(), validQuestions()[0])
		_, err := BuildSnapshot(validForm(), questions, validOptions(), nil)
		require.Error(t, err)
	})
}
