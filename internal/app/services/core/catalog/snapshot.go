package catalog

import (
	"fmt"
	"sort"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/exceptions"
)

// BuildSnapshot assembles catalog rows into an immutable arena and
// validates the traversal invariants. A snapshot that fails validation is
// never handed to a session.
func BuildSnapshot(form *models.Form, questions []models.Question, options []models.Option, redFlags []models.RedFlag) (*models.FormSnapshot, error) {
	snapshot := &models.FormSnapshot{
		Form:      *form,
		Questions: make(map[string]*models.Question, len(questions)),
		Options:   make(map[string]*models.Option, len(options)),
		RedFlags:  make(map[string]*models.RedFlag, len(redFlags)),
	}

	for i := range questions {
		question := questions[i]
		if _, exists := snapshot.Questions[question.ID]; exists {
			return nil, exceptions.ErrCatalogIntegrity(fmt.Sprintf("duplicate question %q", question.ID))
		}
		snapshot.Questions[question.ID] = &question
	}
	for i := range options {
		option := options[i]
		snapshot.Options[option.ID] = &option
	}
	for i := range redFlags {
		flag := redFlags[i]
		snapshot.RedFlags[flag.ID] = &flag
	}

	snapshot.QuestionOrder = make([]string, 0, len(snapshot.Questions))
	for id := range snapshot.Questions {
		snapshot.QuestionOrder = append(snapshot.QuestionOrder, id)
	}
	sort.Slice(snapshot.QuestionOrder, func(i, j int) bool {
		a, b := snapshot.Questions[snapshot.QuestionOrder[i]], snapshot.Questions[snapshot.QuestionOrder[j]]
		if a.SequenceNo != b.SequenceNo {
			return a.SequenceNo < b.SequenceNo
		}
		return a.ID < b.ID
	})

	snapshot.RedFlagOrder = make([]string, 0, len(snapshot.RedFlags))
	for id := range snapshot.RedFlags {
		snapshot.RedFlagOrder = append(snapshot.RedFlagOrder, id)
	}
	sort.Strings(snapshot.RedFlagOrder)

	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// validateSnapshot enforces the catalog invariants: the root exists,
// every question has a deterministic default successor, every rule target
// and option reference resolves, and the successor graph is acyclic.
func validateSnapshot(snapshot *models.FormSnapshot) error {
	root := snapshot.Form.RootQuestionID
	if root == "" || snapshot.Questions[root] == nil {
		return exceptions.ErrCatalogIntegrity(
			fmt.Sprintf("root question %q missing from form %q", root, snapshot.Form.ID))
	}

	for _, id := range snapshot.QuestionOrder {
		question := snapshot.Questions[id]

		if !question.DefaultEnd && question.DefaultNextID == "" {
			return exceptions.ErrCatalogIntegrity(
				fmt.Sprintf("question %q has no default successor", id))
		}
		if question.DefaultNextID != "" && snapshot.Questions[question.DefaultNextID] == nil {
			return exceptions.ErrCatalogIntegrity(
				fmt.Sprintf("question %q default successor %q does not exist", id, question.DefaultNextID))
		}
		for _, rule := range question.Rules {
			if rule.End {
				continue
			}
			if rule.NextQuestionID == "" || snapshot.Questions[rule.NextQuestionID] == nil {
				return exceptions.ErrCatalogIntegrity(
					fmt.Sprintf("question %q rule targets unknown question %q", id, rule.NextQuestionID))
			}
		}
		for _, optionID := range question.OptionIDs {
			option := snapshot.Options[optionID]
			if option == nil || option.QuestionID != id {
				return exceptions.ErrCatalogIntegrity(
					fmt.Sprintf("question %q references unknown option %q", id, optionID))
			}
		}
	}

	return checkAcyclic(snapshot)
}

// checkAcyclic walks every possible successor edge (rule targets plus
// defaults). Requiring the full edge set to be acyclic is stronger than
// the per-answer-path invariant and guarantees traversal terminates
// within the question count for any answer sequence.
func checkAcyclic(snapshot *models.FormSnapshot) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(snapshot.Questions))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return exceptions.ErrCatalogIntegrity(
				fmt.Sprintf("successor cycle through question %q", id))
		case done:
			return nil
		}
		state[id] = visiting

		question := snapshot.Questions[id]
		for _, rule := range question.Rules {
			if rule.End {
				continue
			}
			if err := visit(rule.NextQuestionID); err != nil {
				return err
			}
		}
		if !question.DefaultEnd {
			if err := visit(question.DefaultNextID); err != nil {
				return err
			}
		}

		state[id] = done
		return nil
	}

	for _, id := range snapshot.QuestionOrder {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
