package responses

type LanguageView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FormView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
}

// RedFlagGlanceView is the doctor-facing content for one red flag.
type RedFlagGlanceView struct {
	RedFlagID        string `json:"red_flag_id"`
	Severity         string `json:"severity"`
	DoctorAtAGlance  string `json:"doctor_at_a_glance"`
	DoctorVideoURL   string `json:"doctor_video_url,omitempty"`
	FallbackLanguage bool   `json:"fallback_language"`
}

type DoctorView struct {
	Name           string `json:"name"`
	ClinicName     string `json:"clinic_name"`
	City           string `json:"city,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	ShareableSlug  string `json:"shareable_slug"`
	ShareableLink  string `json:"shareable_link"`
}
