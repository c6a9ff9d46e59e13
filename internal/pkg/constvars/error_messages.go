package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"url":           "must be a valid URL",
	"uuid":          "must be a valid UUID",
	"language_code": "must be a known language code",
	"iso_date":      "must be a date in YYYY-MM-DD format",
	"initials":      "must be 1 to 4 letters",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSessionEnded                  = "your session ended, please start again"
	ErrClientFormUnavailable               = "the requested form is unavailable"
	ErrClientLanguageUnavailable           = "the requested language is unavailable"
	ErrClientDoctorNotFound                = "doctor link not found"
	ErrClientRedFlagNotFound               = "red flag content not found"
	ErrClientAnswerOutOfTurn               = "this answer does not match the current question"
	ErrClientAnswerInvalid                 = "the submitted answer is invalid"
	ErrClientSessionAlreadyComplete        = "this questionnaire has already been completed"
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevCannotParseJSON     = "cannot parse JSON"
	ErrDevValidationFailed    = "request validation failed"
	ErrDevServerProcess       = "internal server process failed"
	ErrDevServerDeadline      = "server deadline exceeded"
	ErrDevCreateHTTPRequest   = "failed to create HTTP request"
	ErrDevCannotMarshalJSON   = "cannot marshal JSON"
	ErrDevCannotUnmarshalJSON = "cannot unmarshal JSON"

	// Catalog messages
	ErrDevFormNotFound     = "form definition not found"
	ErrDevLanguageNotFound = "language not found"
	ErrDevRedFlagNotFound  = "red flag not found"
	ErrDevCatalogIntegrity = "catalog violates traversal invariants: %s"
	ErrDevSnapshotAssembly = "failed to assemble form snapshot"

	// Traversal messages
	ErrDevAnswerOutOfSequence = "answer out of sequence: %s"
	ErrDevAnswerValidation    = "answer failed question constraints: %s"
	ErrDevSessionNotFound     = "traversal session not found"
	ErrDevSessionComplete     = "traversal session already complete"

	// Identity messages
	ErrDevIdentitySecretMissing = "identity secret is absent or empty"
	ErrDevIdentityField         = "identifying field failed canonicalization: %s"

	// Doctor messages
	ErrDevDoctorNotFound = "doctor not found"

	// Session token messages
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected signing method"

	// MongoDB messages
	ErrDevDBFailedToFindDocument    = "failed to find document in DB"
	ErrDevDBFailedToInsertDocument  = "failed to insert document to DB"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in DB"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document from DB"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents from DB"
	ErrDevDBNotObjectID             = "provided identifier is not a valid ObjectID"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "no data from redis with key: %s"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"

	// Minio messages
	ErrDevMinioPresignObject = "failed to presign object in bucket: %s"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email via host: %s"
)
