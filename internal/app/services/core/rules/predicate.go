// Package rules holds the single interpreter for the predicate grammar
// shared by question successor rules and red flag triggers. Evaluation is
// pure and total: a missing or blank answer makes an atomic comparison
// false, never an error.
package rules

import (
	"strconv"
	"strings"

	"codexrfa-service/internal/app/models"
)

// Evaluate interprets predicate against the collected answers.
// Unknown operators evaluate to false so a malformed catalog rule can
// never open a branch it was not authored to open.
func Evaluate(predicate models.Predicate, answers *models.AnswerSet) bool {
	switch predicate.Op {
	case models.PredicateEquals:
		answer, ok := answeredValue(predicate.QuestionID, answers)
		if !ok {
			return false
		}
		selected := answer.SelectedValues()
		return len(selected) == 1 && strings.TrimSpace(selected[0]) == predicate.Value

	case models.PredicateMemberOf:
		answer, ok := answeredValue(predicate.QuestionID, answers)
		if !ok {
			return false
		}
		for _, value := range answer.SelectedValues() {
			for _, candidate := range predicate.Values {
				if strings.TrimSpace(value) == candidate {
					return true
				}
			}
		}
		return false

	case models.PredicateInRange:
		answer, ok := answeredValue(predicate.QuestionID, answers)
		if !ok {
			return false
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(answer.Value), 64)
		if err != nil {
			return false
		}
		if predicate.Min != nil && number < *predicate.Min {
			return false
		}
		if predicate.Max != nil && number > *predicate.Max {
			return false
		}
		return true

	case models.PredicateAnswered:
		_, ok := answeredValue(predicate.QuestionID, answers)
		return ok

	case models.PredicateUnanswered:
		_, ok := answeredValue(predicate.QuestionID, answers)
		return !ok

	case models.PredicateAll:
		for _, arg := range predicate.Args {
			if !Evaluate(arg, answers) {
				return false
			}
		}
		return true

	case models.PredicateAny:
		for _, arg := range predicate.Args {
			if Evaluate(arg, answers) {
				return true
			}
		}
		return false

	case models.PredicateNot:
		if len(predicate.Args) != 1 {
			return false
		}
		return !Evaluate(predicate.Args[0], answers)
	}

	return false
}

// answeredValue returns the answer for questionID when it exists and is
// not blank. A blank free-text answer counts as unanswered.
func answeredValue(questionID string, answers *models.AnswerSet) (models.Answer, bool) {
	answer, ok := answers.Get(questionID)
	if !ok || answer.IsBlank() {
		return models.Answer{}, false
	}
	return answer, true
}
