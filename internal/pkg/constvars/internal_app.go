package constvars

type ContextKey string

const (
	ContextSessionIDKey ContextKey = "sessionID"
	ContextRequestIDKey ContextKey = "requestID"
)

const (
	ResourceLanguages   = "languages"
	ResourceForms       = "forms"
	ResourceDoctors     = "doctors"
	ResourceSessions    = "sessions"
	ResourceRedFlags    = "red-flags"
	ResourceSubmissions = "submissions"
)

const (
	// DefaultLanguageCode is the fallback language when a translation is
	// missing in the requested language.
	DefaultLanguageCode = "en"

	// RecordIDByteLength is the number of random bytes behind the
	// 8-hex-character submission record identifier.
	RecordIDByteLength = 4

	// IdentityFieldSeparator joins canonical identifying fields before
	// key derivation. Canonicalization strips control characters, so the
	// separator can never occur inside a field value.
	IdentityFieldSeparator = "\x1f"

	// IdentityKeyLength is the derived key length in bytes.
	IdentityKeyLength = 16
)

const (
	AnswerKindText        = "text"
	AnswerKindSelect      = "select"
	AnswerKindMultiSelect = "multi_select"
	AnswerKindNumeric     = "numeric"
)

const (
	DateLayoutISO = "2006-01-02"
)
