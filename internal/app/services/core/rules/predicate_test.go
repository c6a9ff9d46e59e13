package rules

import (
	"testing"

	"codexrfa-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func answersWith(entries ...models.Answer) *models.AnswerSet {
	set := &models.AnswerSet{}
	for _, entry := range entries {
		set.Append(entry)
	}
	return set
}

func TestEvaluateEquals(t *testing.T) {
	answers := answersWith(models.Answer{QuestionID: "q_fever", Value: "yes"})

	t.Run("Matching Single Value", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateEquals, QuestionID: "q_fever", Value: "yes"}
		assert.True(t, Evaluate(predicate, answers))
	})

	t.Run("Non Matching Value", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateEquals, QuestionID: "q_fever", Value: "no"}
		assert.False(t, Evaluate(predicate, answers))
	})

	t.Run("Unanswered Question Is False Not Error", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateEquals, QuestionID: "q_rash", Value: "yes"}
		assert.False(t, Evaluate(predicate, answers))
	})

	t.Run("Multi Selection Never Equals Single Value", func(t *testing.T) {
		multi := answersWith(models.Answer{QuestionID: "q_symptoms", Values: []string{"opt_cough", "opt_rash"}})
		predicate := models.Predicate{Op: models.PredicateEquals, QuestionID: "q_symptoms", Value: "opt_cough"}
		assert.False(t, Evaluate(predicate, multi))
	})
}

func TestEvaluateMemberOf(t *testing.T) {
	answers := answersWith(models.Answer{QuestionID: "q_symptoms", Values: []string{"opt_cough", "opt_rash"}})

	t.Run("Any Selected Option In Set", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateMemberOf, QuestionID: "q_symptoms", Values: []string{"opt_rash", "opt_vomiting"}}
		assert.True(t, Evaluate(predicate, answers))
	})

	t.Run("No Overlap", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateMemberOf, QuestionID: "q_symptoms", Values: []string{"opt_vomiting"}}
		assert.False(t, Evaluate(predicate, answers))
	})

	t.Run("Single Choice Answer Also Matches", func(t *testing.T) {
		single := answersWith(models.Answer{QuestionID: "q_fever", Value: "opt_yes"})
		predicate := models.Predicate{Op: models.PredicateMemberOf, QuestionID: "q_fever", Values: []string{"opt_yes"}}
		assert.True(t, Evaluate(predicate, single))
	})
}

func TestEvaluateInRange(t *testing.T) {
	answers := answersWith(models.Answer{QuestionID: "q_duration", Value: "7"})

	t.Run("Within Bounds", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateInRange, QuestionID: "q_duration", Min: floatPtr(5), Max: floatPtr(30)}
		assert.True(t, Evaluate(predicate, answers))
	})

	t.Run("Below Min", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateInRange, QuestionID: "q_duration", Min: floatPtr(10)}
		assert.False(t, Evaluate(predicate, answers))
	})

	t.Run("Open Upper Bound", func(t *testing.T) {
		predicate := models.Predicate{Op: models.PredicateInRange, QuestionID: "q_duration", Min: floatPtr(5)}
		assert.True(t, Evaluate(predicate, answers))
	})

	t.Run("Non Numeric Answer Is False", func(t *testing.T) {
		text := answersWith(models.Answer{QuestionID: "q_duration", Value: "a week"})
		predicate := models.Predicate{Op: models.PredicateInRange, QuestionID: "q_duration", Min: floatPtr(0)}
		assert.False(t, Evaluate(predicate, text))
	})
}

func TestEvaluateAnsweredAndBlank(t *testing.T) {
	answers := answersWith(
		models.Answer{QuestionID: "q_notes", Value: "   "},
		models.Answer{QuestionID: "q_fever", Value: "yes"},
	)

	t.Run("Blank Free Text Counts As Unanswered", func(t *testing.T) {
		assert.False(t, Evaluate(models.Predicate{Op: models.PredicateAnswered, QuestionID: "q_notes"}, answers))
		assert.True(t, Evaluate(models.Predicate{Op: models.PredicateUnanswered, QuestionID: "q_notes"}, answers))
	})

	t.Run("Answered", func(t *testing.T) {
		assert.True(t, Evaluate(models.Predicate{Op: models.PredicateAnswered, QuestionID: "q_fever"}, answers))
	})
}

func TestEvaluateComposite(t *testing.T) {
	answers := answersWith(
		models.Answer{QuestionID: "q_fever", Value: "yes"},
		models.Answer{QuestionID: "q_duration", Value: "7"},
	)

	feverYes := models.Predicate{Op: models.PredicateEquals, QuestionID: "q_fever", Value: "yes"}
	longDuration := models.Predicate{Op: models.PredicateInRange, QuestionID: "q_duration", Min: floatPtr(5)}
	rashReported := models.Predicate{Op: models.PredicateAnswered, QuestionID: "q_rash"}

	t.Run("All", func(t *testing.T) {
		assert.True(t, Evaluate(models.Predicate{Op: models.PredicateAll, Args: []models.Predicate{feverYes, longDuration}}, answers))
		assert.False(t, Evaluate(models.Predicate{Op: models.PredicateAll, Args: []models.Predicate{feverYes, rashReported}}, answers))
	})

	t.Run("Any", func(t *testing.T) {
		assert.True(t, Evaluate(models.Predicate{Op: models.PredicateAny, Args: []models.Predicate{rashReported, feverYes}}, answers))
		assert.False(t, Evaluate(models.Predicate{Op: models.PredicateAny, Args: []models.Predicate{rashReported}}, answers))
	})

	t.Run("Not", func(t *testing.T) {
		assert.False(t, Evaluate(models.Predicate{Op: models.PredicateNot, Args: []models.Predicate{feverYes}}, answers))
		assert.True(t, Evaluate(models.Predicate{Op: models.PredicateNot, Args: []models.Predicate{rashReported}}, answers))
	})

	t.Run("Unknown Operator Is False", func(t *testing.T) {
		assert.False(t, Evaluate(models.Predicate{Op: "regex_match", QuestionID: "q_fever"}, answers))
	})
}
