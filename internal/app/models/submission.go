package models

import "time"

// PatientIdentity is the deterministic, irreversible patient identifier.
// It never contains raw identifying fields.
type PatientIdentity struct {
	Hash       string `bson:"hash" json:"hash"`
	KDFVersion string `bson:"kdf_version" json:"kdf_version"`
}

// TriggeredFlag is a red flag that fired for a completed answer set, with
// its guidance text already resolved in the requested language.
type TriggeredFlag struct {
	RedFlagID string `bson:"red_flag_id" json:"red_flag_id"`
	Severity  string `bson:"severity" json:"severity"`
	Language  string `bson:"language" json:"language"`
	// FallbackLanguage is true when the requested language had no
	// translation and the default-language text was substituted.
	FallbackLanguage bool   `bson:"fallback_language" json:"fallback_language"`
	PatientResponse  string `bson:"patient_response" json:"patient_response"`
	DoctorAtAGlance  string `bson:"doctor_at_a_glance" json:"doctor_at_a_glance"`
	PatientVideoURL  string `bson:"patient_video_url" json:"patient_video_url"`
	DoctorVideoURL   string `bson:"doctor_video_url" json:"doctor_video_url"`
}

// SubmissionRecord is the append-only audit artifact for one completed
// traversal. Responses hold the language-agnostic question->value payload.
type SubmissionRecord struct {
	RecordID    string          `bson:"record_id" json:"record_id"`
	Patient     PatientIdentity `bson:"patient" json:"patient"`
	DoctorID    string          `bson:"doctor_id" json:"doctor_id"`
	FormID      string          `bson:"form_id" json:"form_id"`
	FormVersion int64           `bson:"form_version" json:"form_version"`
	Language    string          `bson:"language" json:"language"`
	// Responses maps question ID to the submitted value: a string for
	// text/numeric/single-choice, a []string for multi-choice, and a
	// "<question_id>_text" entry for supplemental free text.
	Responses  map[string]interface{} `bson:"responses" json:"responses"`
	RedFlagIDs []string               `bson:"red_flag_ids" json:"red_flag_ids"`
	RedFlags   []TriggeredFlag        `bson:"red_flags" json:"red_flags"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
}

// TraversalSession is the caller-held state between advance steps, stored
// in Redis keyed by session ID. The identity hash is derived at session
// start; raw identifying fields are never stored.
type TraversalSession struct {
	ID          string          `json:"id"`
	DoctorID    string          `json:"doctor_id"`
	FormID      string          `json:"form_id"`
	FormVersion int64           `json:"form_version"`
	Language    string          `json:"language"`
	Patient     PatientIdentity `json:"patient"`
	Answers     AnswerSet       `json:"answers"`
	// PendingQuestionID is the question the engine most recently returned;
	// the next answer must reference it.
	PendingQuestionID string    `json:"pending_question_id"`
	Completed         bool      `json:"completed"`
	StartedAt         time.Time `json:"started_at"`
}
