package constvars

// MongoDB collections
const (
	MongoCollectionLanguages   = "languages"
	MongoCollectionForms       = "forms"
	MongoCollectionQuestions   = "questions"
	MongoCollectionOptions     = "question_options"
	MongoCollectionRedFlags    = "red_flags"
	MongoCollectionDoctors     = "doctors"
	MongoCollectionSubmissions = "patient_submissions"
)

// Redis key formats
const (
	RedisKeySessionFormat  = "rfa:session:%s"
	RedisKeySnapshotFormat = "rfa:catalog:%s:v%d"
)
