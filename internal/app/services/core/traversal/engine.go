// Package traversal steps a caregiver through a form one question at a
// time, enforcing branching rules and answer constraints. Advance is a
// pure function over the snapshot and the session's answer set; session
// storage and HTTP concerns live in the usecase.
package traversal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/app/services/core/rules"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"
)

// NextStep is the engine's verdict after recording an answer: either the
// next question to present or completion.
type NextStep struct {
	Complete       bool
	NextQuestionID string
}

// Advance validates latest against pendingQuestionID, appends it to
// answers, and resolves the successor from the just-answered question's
// rule set. It mutates only answers; the snapshot is read-only.
func Advance(snapshot *models.FormSnapshot, answers *models.AnswerSet, pendingQuestionID string, latest models.Answer) (NextStep, error) {
	if latest.QuestionID != pendingQuestionID {
		return NextStep{}, exceptions.ErrTraversalSequence(
			fmt.Sprintf("expected answer for %q, got %q", pendingQuestionID, latest.QuestionID))
	}
	if answers.Has(latest.QuestionID) {
		return NextStep{}, exceptions.ErrTraversalSequence(
			fmt.Sprintf("question %q already answered", latest.QuestionID))
	}

	question := snapshot.Question(latest.QuestionID)
	if question == nil {
		return NextStep{}, exceptions.ErrCatalogIntegrity(
			fmt.Sprintf("pending question %q not in snapshot", latest.QuestionID))
	}

	if err := validateAnswer(snapshot, question, latest); err != nil {
		return NextStep{}, err
	}

	answers.Append(latest)

	next, err := resolveSuccessor(question, answers)
	if err != nil {
		return NextStep{}, err
	}
	if next.Complete {
		return next, nil
	}

	target := snapshot.Question(next.NextQuestionID)
	if target == nil {
		return NextStep{}, exceptions.ErrCatalogIntegrity(
			fmt.Sprintf("successor %q of %q not in snapshot", next.NextQuestionID, question.ID))
	}
	// Loop guard: an already-answered successor means the rule graph has a
	// cycle along this answer path. That is a catalog defect, not a
	// caregiver error.
	if answers.Has(target.ID) {
		return NextStep{}, exceptions.ErrCatalogIntegrity(
			fmt.Sprintf("successor %q of %q already answered this session", target.ID, question.ID))
	}

	return next, nil
}

// resolveSuccessor evaluates the question's rules in priority order; the
// first match wins, otherwise the default successor applies.
func resolveSuccessor(question *models.Question, answers *models.AnswerSet) (NextStep, error) {
	ordered := make([]models.SuccessorRule, len(question.Rules))
	copy(ordered, question.Rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	for _, rule := range ordered {
		if !rules.Evaluate(rule.When, answers) {
			continue
		}
		if rule.End {
			return NextStep{Complete: true}, nil
		}
		return NextStep{NextQuestionID: rule.NextQuestionID}, nil
	}

	if question.DefaultEnd {
		return NextStep{Complete: true}, nil
	}
	if question.DefaultNextID == "" {
		return NextStep{}, exceptions.ErrCatalogIntegrity(
			fmt.Sprintf("question %q has no default successor", question.ID))
	}
	return NextStep{NextQuestionID: question.DefaultNextID}, nil
}

func validateAnswer(snapshot *models.FormSnapshot, question *models.Question, answer models.Answer) error {
	switch question.Kind {
	case constvars.AnswerKindText:
		if question.Required && strings.TrimSpace(answer.Value) == "" {
			return exceptions.ErrAnswerValidation(
				fmt.Sprintf("question %q requires a non-blank answer", question.ID))
		}

	case constvars.AnswerKindNumeric:
		trimmed := strings.TrimSpace(answer.Value)
		if trimmed == "" {
			if question.Required {
				return exceptions.ErrAnswerValidation(
					fmt.Sprintf("question %q requires a numeric answer", question.ID))
			}
			return nil
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return exceptions.ErrAnswerValidation(
				fmt.Sprintf("question %q expects a number, got %q", question.ID, answer.Value))
		}
		if question.Range != nil && (number < question.Range.Min || number > question.Range.Max) {
			return exceptions.ErrAnswerValidation(
				fmt.Sprintf("question %q answer %v outside range [%v, %v]",
					question.ID, number, question.Range.Min, question.Range.Max))
		}

	case constvars.AnswerKindSelect:
		selected := answer.SelectedValues()
		if len(selected) == 0 {
			if question.Required {
				return exceptions.ErrAnswerValidation(
					fmt.Sprintf("question %q requires a selection", question.ID))
			}
			return nil
		}
		if len(selected) > 1 {
			return exceptions.ErrAnswerValidation(
				fmt.Sprintf("question %q accepts a single selection", question.ID))
		}
		return validateSelections(snapshot, question, selected)

	case constvars.AnswerKindMultiSelect:
		selected := answer.SelectedValues()
		if len(selected) == 0 && question.Required {
			return exceptions.ErrAnswerValidation(
				fmt.Sprintf("question %q requires at least one selection", question.ID))
		}
		return validateSelections(snapshot, question, selected)

	default:
		return exceptions.ErrCatalogIntegrity(
			fmt.Sprintf("question %q has unknown kind %q", question.ID, question.Kind))
	}
	return nil
}

// validateSelections checks that every selected option belongs to the
// question.
func validateSelections(snapshot *models.FormSnapshot, question *models.Question, selected []string) error {
	for _, optionID := range selected {
		option := snapshot.Option(optionID)
		if option == nil || option.QuestionID != question.ID {
			return exceptions.ErrAnswerValidation(
				fmt.Sprintf("option %q does not belong to question %q", optionID, question.ID))
		}
	}
	return nil
}
