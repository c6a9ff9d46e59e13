package requests

// RedFlagEmailPayload is the message published to the notification queue
// when a submission triggers red flags. It carries only derived identity,
// never raw identifying fields.
type RedFlagEmailPayload struct {
	DoctorName  string             `json:"doctor_name"`
	DoctorEmail string             `json:"doctor_email"`
	RecordID    string             `json:"record_id"`
	PatientHash string             `json:"patient_hash"`
	FormID      string             `json:"form_id"`
	Language    string             `json:"language"`
	Flags       []RedFlagEmailItem `json:"flags"`
}

type RedFlagEmailItem struct {
	RedFlagID       string `json:"red_flag_id"`
	Severity        string `json:"severity"`
	DoctorAtAGlance string `json:"doctor_at_a_glance"`
	DoctorVideoURL  string `json:"doctor_video_url"`
}
