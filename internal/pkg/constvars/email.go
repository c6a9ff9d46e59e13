package constvars

const (
	EmailRedFlagSubjectFormat = "Red flags observed for patient %s"

	// To, Subject, HTML body
	EmailSendHTMLFormat = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s"
)
