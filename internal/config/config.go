package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/MinerTapper_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat   string `validate:"omitempty,oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	LogDir      string // optional; when set, logs are also written to session files here
	APIKey      string // optional; when set, mutating routes require X-API-Key

	CatalogPath  string
	TickInterval time.Duration `validate:"min=0"`

	StoreDriver   string `validate:"oneof=memory file sqlite postgres mongo s3"`
	StorePath     string `validate:"required"`
	StoreCompress bool

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int `validate:"min=0"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	MongoURI      string `validate:"required_if=StoreDriver mongo"`
	MongoDatabase string `validate:"required_if=StoreDriver mongo"`

	S3Bucket    string `validate:"required_if=StoreDriver s3"`
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	ReferralBaseURL      string `validate:"omitempty,url"`
	ReferralBotUsername  string
	ReferralPollInterval time.Duration `validate:"min=0"`
	ReferralCacheTTL     time.Duration `validate:"min=0"`
	PlayerID             int64         `validate:"min=0"`
	TelegramInitData     string

	PersistQueueSize int           `validate:"min=1"`
	ShutdownTimeout  time.Duration `validate:"min=0"`
	TrustedProxies   []string
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if v := os.Getenv("ENV_SCHEMA_VERSION"); v != "" && v != ExpectedEnvSchemaVersion {
		return nil, fmt.Errorf(ErrMsgSchemaVersionMismatch, ExpectedEnvSchemaVersion, v)
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "")),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		LogDir:      getEnv("LOG_DIR", ""),
		APIKey:      getEnv("API_KEY", ""),

		CatalogPath: getEnv("CATALOG_PATH", ""),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver)),
		StorePath:   getEnv("STORE_PATH", DefaultStorePath),

		DBUser:     getEnv("DB_USER", DefaultDBUser),
		DBPassword: getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:     getEnv("DB_HOST", DefaultDBHost),
		DBPort:     getEnv("DB_PORT", DefaultDBPort),
		DBName:     getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:  getEnv("DB_SSLMODE", DefaultDBSSLMode),

		MongoURI:      getEnv("MONGO_URI", DefaultMongoURI),
		MongoDatabase: getEnv("MONGO_DATABASE", DefaultMongoDatabase),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", DefaultS3Region),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		ReferralBaseURL:     getEnv("REFERRAL_BASE_URL", ""),
		ReferralBotUsername: getEnv("REFERRAL_BOT_USERNAME", ""),
		TelegramInitData:    getEnv("TELEGRAM_INIT_DATA", ""),
		TrustedProxies:      splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	var errs []error
	var err error

	if cfg.Port, err = getEnvAsInt("PORT", DefaultPort); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err))
	}
	if cfg.DBMaxConns, err = getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		errs = append(errs, err)
	}
	if cfg.PersistQueueSize, err = getEnvAsInt("PERSIST_QUEUE_SIZE", DefaultPersistQueueSize); err != nil {
		errs = append(errs, err)
	}
	if cfg.PlayerID, err = getEnvAsInt64("PLAYER_ID", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.StoreCompress, err = getEnvAsBool("STORE_COMPRESS", false); err != nil {
		errs = append(errs, err)
	}
	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"TICK_INTERVAL", 0, &cfg.TickInterval},
		{"DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime, &cfg.DBMaxConnIdleTime},
		{"DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime, &cfg.DBMaxConnLifetime},
		{"REFERRAL_POLL_INTERVAL", DefaultReferralPollInterval, &cfg.ReferralPollInterval},
		{"REFERRAL_CACHE_TTL", DefaultReferralCacheTTL, &cfg.ReferralCacheTTL},
		{"SHUTDOWN_TIMEOUT", DefaultShutdownTimeout, &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if *d.dst, err = getEnvAsDuration(d.key, d.def); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every failing field
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf(ErrMsgFieldInvalid, fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(msgs, "; "))
}

// Warnings lists non-fatal problems such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string
	if c.StoreDriver == StoreDriverPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - buy and upgrade routes are open to anyone who can reach the server")
	}
	return warnings
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidInt+": %w", key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidInt+": %w", key, err)
	}
	return n, nil
}

// getEnvAsDuration accepts Go durations ("30s") or a bare number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidDuration+": %w", key, err)
	}
	return d, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidBool+": %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
