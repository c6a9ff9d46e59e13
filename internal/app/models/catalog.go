package models

// Catalog entities are loaded from MongoDB rows and assembled into an
// immutable FormSnapshot before a traversal session starts. Entities
// reference each other by identifier only; the snapshot's maps are the
// arena that resolves those references.

type Language struct {
	Code string `bson:"code" json:"code"`
	Name string `bson:"name" json:"name"`
}

type NumericRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

type Question struct {
	ID         string  `bson:"question_id" json:"question_id"`
	FormID     string  `bson:"form_id" json:"form_id"`
	SequenceNo int     `bson:"sequence_no" json:"sequence_no"`
	Kind       string  `bson:"question_type" json:"question_type"`
	Required   bool    `bson:"required" json:"required"`
	// Range constrains numeric answers when set.
	Range *NumericRange `bson:"range,omitempty" json:"range,omitempty"`
	// Prompts maps language code to localized prompt text.
	Prompts   map[string]string `bson:"prompts" json:"prompts"`
	OptionIDs []string          `bson:"option_ids" json:"option_ids"`
	// ShowsTextField marks questions that collect a supplemental free-text
	// note alongside the selected options.
	ShowsTextField bool `bson:"shows_text_field" json:"shows_text_field"`
	// Rules are evaluated in declared priority order; the first match
	// decides the successor. When none match the default applies.
	Rules []SuccessorRule `bson:"rules" json:"rules"`
	// DefaultNextID is the default successor question. Empty together with
	// DefaultEnd=true means traversal ends here by default.
	DefaultNextID string `bson:"default_next_id" json:"default_next_id"`
	DefaultEnd    bool   `bson:"default_end" json:"default_end"`
}

type Option struct {
	ID              string `bson:"option_id" json:"option_id"`
	QuestionID      string `bson:"question_id" json:"question_id"`
	SequenceNo      int    `bson:"sequence_no" json:"sequence_no"`
	IsRedFlagOption bool   `bson:"is_red_flag_option" json:"is_red_flag_option"`
	ShowsTextField  bool   `bson:"shows_text_field" json:"shows_text_field"`
	// Labels maps language code to a localized option label.
	Labels map[string]string `bson:"labels" json:"labels"`
}

// SuccessorRule routes traversal after its question is answered.
type SuccessorRule struct {
	Priority int       `bson:"priority" json:"priority"`
	When     Predicate `bson:"when" json:"when"`
	// NextQuestionID is the target question; End terminates traversal.
	NextQuestionID string `bson:"next_question_id,omitempty" json:"next_question_id,omitempty"`
	End            bool   `bson:"end,omitempty" json:"end,omitempty"`
}

type RedFlagTranslation struct {
	PatientResponse string `bson:"patient_response" json:"patient_response"`
	DoctorAtAGlance string `bson:"doctor_at_a_glance" json:"doctor_at_a_glance"`
}

type RedFlag struct {
	ID       string `bson:"red_flag_id" json:"red_flag_id"`
	FormID   string `bson:"form_id" json:"form_id"`
	Severity string `bson:"severity" json:"severity"`
	// Default-language content, used when a translation is missing.
	DefaultPatientResponse string `bson:"default_patient_response" json:"default_patient_response"`
	DoctorAtAGlance        string `bson:"doctor_at_a_glance" json:"doctor_at_a_glance"`
	PatientVideoURL        string `bson:"patient_video_url" json:"patient_video_url"`
	DoctorVideoURL         string `bson:"doctor_video_url" json:"doctor_video_url"`
	Trigger                Predicate `bson:"trigger" json:"trigger"`
	// Translations maps language code to localized content.
	Translations map[string]RedFlagTranslation `bson:"translations" json:"translations"`
}

type Form struct {
	ID          string `bson:"form_id" json:"form_id"`
	Version     int64  `bson:"version" json:"version"`
	Description string `bson:"description" json:"description"`
	// Names maps language code to the localized form name.
	Names           map[string]string `bson:"names" json:"names"`
	DefaultLanguage string            `bson:"default_language" json:"default_language"`
	LanguageCodes   []string          `bson:"language_codes" json:"language_codes"`
	RootQuestionID  string            `bson:"root_question_id" json:"root_question_id"`
}

// FormSnapshot is the fully resolved, immutable definition of one form
// version. A session pins its snapshot at start; a catalog update is never
// observed mid-traversal.
type FormSnapshot struct {
	Form Form `json:"form"`
	// Arena maps, keyed by entity identifier.
	Questions map[string]*Question `json:"questions"`
	Options   map[string]*Option   `json:"options"`
	RedFlags  map[string]*RedFlag  `json:"red_flags"`
	// QuestionOrder holds question IDs sorted by sequence number, used for
	// deterministic listing and validation walks.
	QuestionOrder []string `json:"question_order"`
	// RedFlagOrder holds red flag IDs sorted lexicographically so that
	// evaluation output is deterministic.
	RedFlagOrder []string `json:"red_flag_order"`
}

// Question returns the question for id, or nil.
func (s *FormSnapshot) Question(id string) *Question {
	return s.Questions[id]
}

// Option returns the option for id, or nil.
func (s *FormSnapshot) Option(id string) *Option {
	return s.Options[id]
}

// QuestionCount bounds traversal length.
func (s *FormSnapshot) QuestionCount() int {
	return len(s.Questions)
}
