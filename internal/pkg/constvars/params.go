package constvars

const (
	URLParamDoctorSlug = "doctor_slug"
	URLParamRedFlagID  = "red_flag_id"
	URLParamFormID     = "form_id"
)

const (
	URLQueryParamLanguage = "lang"
)
