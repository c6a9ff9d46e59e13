package traversal

import (
	"testing"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feverSnapshot builds a small triage flow: fever duration in days, then a
// symptom checklist only when the fever has lasted five days or more.
func feverSnapshot() *models.FormSnapshot {
	min := 5.0
	return &models.FormSnapshot{
		Form: models.Form{
			ID:             "fever_rfa",
			Version:        1,
			RootQuestionID: "q1",
		},
		Questions: map[string]*models.Question{
			"q1": {
				ID:       "q1",
				Kind:     constvars.AnswerKindNumeric,
				Required: true,
				Range:    &models.NumericRange{Min: 0, Max: 60},
				Rules: []models.SuccessorRule{
					{
						Priority:       1,
						When:           models.Predicate{Op: models.PredicateInRange, QuestionID: "q1", Min: &min},
						NextQuestionID: "q2",
					},
				},
				DefaultEnd: true,
			},
			"q2": {
				ID:         "q2",
				Kind:       constvars.AnswerKindMultiSelect,
				OptionIDs:  []string{"q2_rash", "q2_vomit", "q2_none"},
				DefaultEnd: true,
			},
		},
		Options: map[string]*models.Option{
			"q2_rash":  {ID: "q2_rash", QuestionID: "q2"},
			"q2_vomit": {ID: "q2_vomit", QuestionID: "q2"},
			"q2_none":  {ID: "q2_none", QuestionID: "q2"},
		},
		QuestionOrder: []string{"q1", "q2"},
	}
}

func TestAdvance(t *testing.T) {
	t.Run("short fever completes after first question", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}

		step, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "2"})
		require.NoError(t, err)
		assert.True(t, step.Complete)
		assert.Equal(t, 1, answers.Len())
	})

	t.Run("prolonged fever routes to symptom checklist", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}

		step, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "7"})
		require.NoError(t, err)
		assert.False(t, step.Complete)
		assert.Equal(t, "q2", step.NextQuestionID)

		step, err = Advance(snapshot, answers, "q2", models.Answer{QuestionID: "q2", Values: []string{"q2_rash"}})
		require.NoError(t, err)
		assert.True(t, step.Complete)
	})

	t.Run("answer for wrong question is a sequence error", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}

		_, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q2", Values: []string{"q2_rash"}})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
		assert.Equal(t, 0, answers.Len())
	})

	t.Run("already answered question is a sequence error", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "7"})

		_, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "3"})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
	})

	t.Run("non-numeric answer to numeric question is rejected", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}

		_, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "seven"})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Equal(t, 0, answers.Len())
	})

	t.Run("numeric answer outside range is rejected", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}

		_, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "90"})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("selection not owned by the question is rejected", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}
		answers.Append(models.Answer{QuestionID: "q1", Value: "7"})

		_, err := Advance(snapshot, answers, "q2", models.Answer{QuestionID: "q2", Values: []string{"other_option"}})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("required blank answer is rejected", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}

		_, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "  "})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("successor already answered is a catalog defect", func(t *testing.T) {
		snapshot := feverSnapshot()
		snapshot.Questions["q2"].DefaultEnd = false
		snapshot.Questions["q2"].DefaultNextID = "q1"
		answers := &models.AnswerSet{}

		_, err := Advance(snapshot, answers, "q1", models.Answer{QuestionID: "q1", Value: "7"})
		require.NoError(t, err)

		_, err = Advance(snapshot, answers, "q2", models.Answer{QuestionID: "q2", Values: []string{"q2_none"}})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusInternalServerError))
	})

	t.Run("traversal terminates within the question count", func(t *testing.T) {
		snapshot := feverSnapshot()
		answers := &models.AnswerSet{}
		pending := snapshot.Form.RootQuestionID

		values := map[string]models.Answer{
			"q1": {QuestionID: "q1", Value: "7"},
			"q2": {QuestionID: "q2", Values: []string{"q2_vomit"}},
		}

		steps := 0
		for {
			require.Less(t, steps, snapshot.QuestionCount(), "traversal exceeded question count")
			step, err := Advance(snapshot, answers, pending, values[pending])
			require.NoError(t, err)
			steps++
			if step.Complete {
				break
			}
			pending = step.NextQuestionID
		}
		assert.Equal(t, 2, steps)
	})
}
