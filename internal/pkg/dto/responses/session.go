package responses

// OptionView is one selectable option localized for the session language.
type OptionView struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	ShowsTextField bool   `json:"shows_text_field"`
}

// QuestionView is the next question to present, localized.
type QuestionView struct {
	ID             string       `json:"id"`
	Prompt         string       `json:"prompt"`
	Kind           string       `json:"kind"`
	Required       bool         `json:"required"`
	ShowsTextField bool         `json:"shows_text_field"`
	Min            *float64     `json:"min,omitempty"`
	Max            *float64     `json:"max,omitempty"`
	Options        []OptionView `json:"options,omitempty"`
}

// TriggeredFlagView is caregiver-facing guidance for one triggered flag.
type TriggeredFlagView struct {
	RedFlagID        string `json:"red_flag_id"`
	Severity         string `json:"severity"`
	PatientResponse  string `json:"patient_response"`
	PatientVideoURL  string `json:"patient_video_url,omitempty"`
	FallbackLanguage bool   `json:"fallback_language"`
}

// SessionStarted is the reply to a successful session start.
type SessionStarted struct {
	SessionToken string        `json:"session_token"`
	FormID       string        `json:"form_id"`
	Language     string        `json:"language"`
	Question     *QuestionView `json:"question"`
}

// SessionStep is the reply to an advance: either the next question or,
// when Completed, the record ID and any triggered flags.
type SessionStep struct {
	Completed bool                `json:"completed"`
	Question  *QuestionView       `json:"question,omitempty"`
	RecordID  string              `json:"record_id,omitempty"`
	RedFlags  []TriggeredFlagView `json:"red_flags,omitempty"`
}
