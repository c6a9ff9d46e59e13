package models

// Predicate is the tagged-variant rule grammar shared by successor rules
// and red flag triggers. Exactly one interpreter evaluates it
// (services/core/rules); everything else treats it as data.
type Predicate struct {
	Op string `bson:"op" json:"op"`
	// QuestionID is the answer the atomic comparisons read.
	QuestionID string `bson:"question_id,omitempty" json:"question_id,omitempty"`
	// Value for equals comparisons.
	Value string `bson:"value,omitempty" json:"value,omitempty"`
	// Values for member-of comparisons.
	Values []string `bson:"values,omitempty" json:"values,omitempty"`
	// Min/Max for numeric range comparisons; nil means unbounded.
	Min *float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max *float64 `bson:"max,omitempty" json:"max,omitempty"`
	// Args for the composite operators.
	Args []Predicate `bson:"args,omitempty" json:"args,omitempty"`
}

const (
	PredicateEquals     = "equals"
	PredicateMemberOf   = "member_of"
	PredicateInRange    = "in_range"
	PredicateAnswered   = "answered"
	PredicateUnanswered = "unanswered"
	PredicateAll        = "all"
	PredicateAny        = "any"
	PredicateNot        = "not"
)
