package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvJWTSecret = "ACCESS_TOKEN_SECRET"
	EnvTokenTTL  = "ACCESS_TOKEN_TTL"

	EnvSendGridAPIKey  = "EMAIL_SENDER_API_KEY"
	EnvEmailSender     = "EMAIL_SENDER"
	EnvEmailSenderName = "EMAIL_SENDER_NAME"

	EnvStripeSecretKey = "STRIPE_SECRET_KEY"
	EnvStripeDryRun    = "STRIPE_DRY_RUN"

	EnvKafkaBrokers   = "KAFKA_BROKERS"
	EnvNotifyTopic    = "NOTIFY_TOPIC"
	EnvNotifyDLQTopic = "NOTIFY_DLQ_TOPIC"
	EnvNotifyGroupID  = "NOTIFY_GROUP_ID"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvServiceSeedFile = "SERVICE_SEED_FILE"
)
