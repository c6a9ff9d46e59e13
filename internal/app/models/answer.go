package models

import "strings"

// Answer is one submitted response. Value carries text, numeric, and
// single-choice answers; Values carries multi-choice selections. FreeText
// holds the supplemental note for questions/options that show a text field.
type Answer struct {
	QuestionID string   `json:"question_id"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
	FreeText   string   `json:"free_text,omitempty"`
}

// SelectedValues returns the answer's selections as a slice regardless of
// question kind.
func (a Answer) SelectedValues() []string {
	if len(a.Values) > 0 {
		return a.Values
	}
	if a.Value != "" {
		return []string{a.Value}
	}
	return nil
}

// IsBlank reports whether the answer carries no value at all. A blank
// optional answer counts as unanswered for predicate purposes.
func (a Answer) IsBlank() bool {
	return strings.TrimSpace(a.Value) == "" && len(a.Values) == 0
}

// AnswerSet is the ordered, append-only sequence of answers collected
// during one traversal session. Only the traversal engine appends to it.
type AnswerSet struct {
	Entries []Answer `json:"entries"`
}

// Get returns the answer for questionID and whether one exists.
func (s *AnswerSet) Get(questionID string) (Answer, bool) {
	for _, entry := range s.Entries {
		if entry.QuestionID == questionID {
			return entry, true
		}
	}
	return Answer{}, false
}

// Has reports whether questionID has been answered in this session.
func (s *AnswerSet) Has(questionID string) bool {
	_, ok := s.Get(questionID)
	return ok
}

// Append records the next answer. Callers must have validated ordering.
func (s *AnswerSet) Append(answer Answer) {
	s.Entries = append(s.Entries, answer)
}

// Len returns the number of collected answers.
func (s *AnswerSet) Len() int {
	return len(s.Entries)
}
