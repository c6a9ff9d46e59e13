package constvars

const (
	ListLanguagesSuccessMessage   = "Successfully retrieved languages"
	ListFormsSuccessMessage       = "Successfully retrieved forms"
	CreateDoctorSuccessMessage    = "Successfully registered doctor"
	FindDoctorSuccessMessage      = "Successfully retrieved doctor"
	StartSessionSuccessMessage    = "Successfully started questionnaire session"
	AdvanceSessionSuccessMessage  = "Successfully recorded answer"
	CompleteSessionSuccessMessage = "Successfully completed questionnaire"
	FindRedFlagSuccessMessage     = "Successfully retrieved red flag content"
)
