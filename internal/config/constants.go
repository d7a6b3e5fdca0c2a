package config

import "time"

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverS3       = "s3"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "minertapper"
	DefaultVersion              = "dev"
	DefaultStoreDriver          = StoreDriverFile
	DefaultStorePath            = "data"
	DefaultDBUser               = "postgres"
	DefaultDBPassword           = "postgres"
	DefaultDBHost               = "localhost"
	DefaultDBPort               = "5432"
	DefaultDBName               = "minertapper"
	DefaultDBSSLMode            = "disable"
	DefaultDBMaxConns           = 5
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultMongoURI             = "mongodb://localhost:27017"
	DefaultMongoDatabase        = "minertapper"
	DefaultS3Region             = "us-east-1"
	DefaultReferralPollInterval = 30 * time.Second
	DefaultReferralCacheTTL     = 5 * time.Minute
	DefaultPersistQueueSize     = 16
	DefaultShutdownTimeout      = 10 * time.Second
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Error messages
const (
	ErrMsgInvalidPort           = "invalid PORT value"
	ErrMsgInvalidInt            = "invalid %s value"
	ErrMsgInvalidDuration       = "invalid %s duration"
	ErrMsgInvalidBool           = "invalid %s flag"
	ErrMsgInvalidConfig         = "invalid configuration"
	ErrMsgFieldInvalid          = "%s failed %s validation"
	ErrMsgSchemaVersionMismatch = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
)

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
