package config

type (
	InternalConfig struct {
		App      App
		Session  Session
		Identity Identity
		Mailer   Mailer
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Address         string
		BaseURL         string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	Session struct {
		JWTSecret        string
		TTLMinutes       int
		SnapshotTTLHours int
	}

	// Identity is the process-wide KDF parameter set consumed only by the
	// identity deriver. An empty secret is a startup-time configuration
	// error.
	Identity struct {
		Secret     string
		Iterations int
		Version    string
	}

	Mailer struct {
		QueueName      string
		EmailSender    string
		SendRatePerMin int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port            string
		Host            string
		Username        string
		Password        string
		BucketName      string
		UseSSL          bool
		PresignExpHours int
	}

	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
