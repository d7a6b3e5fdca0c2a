package referral

import "time"

// Link format
const (
	LinkFormat = "https://t.me/%s?start=ref%d"
	StatsPath  = "/api/referrals/%d"
)

// Telegram WebApp initData fields
const (
	InitDataUserField = "user"
)

// Display placeholders
const (
	PlaceholderUnavailable      = "?"
	PlaceholderBonusUnavailable = "? USDT"
	PlaceholderNoIdentity       = "-"
	BonusFormat                 = "%.2f USDT"
)

// Reasons the referral panel is disabled
const (
	ReasonNotInHost        = "Available only in Telegram"
	ReasonUserUnavailable  = "Failed to get user data"
	IdentitySourceStatic   = "static"
	IdentitySourceTelegram = "telegram"
)

// Client defaults
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultCacheSize  = 128
	DefaultCacheTTL   = 30 * time.Second
)

// Cache schema version; bump when cachedStats changes
const CacheSchemaVersion = "1.0"

// Error messages
const (
	ErrMsgEmptyBaseURL        = "empty referral base url"
	ErrMsgCreateRequestFailed = "failed to create request: %w"
	ErrMsgUnexpectedStatus    = "%w: status %d"
	ErrMsgDecodeFailed        = "%w: failed to decode stats: %v"
	ErrMsgMaxRetriesExceeded  = "%w: max retries exceeded: %v"
	ErrMsgInvalidUserField    = "invalid user field: %w"
)

// Log messages
const (
	LogMsgRetryingRequest  = "Retrying referral stats request"
	LogMsgRequestFailed    = "Referral stats request failed"
	LogMsgServerError      = "Referral service server error, will retry"
	LogMsgStatsFetched     = "Referral stats fetched"
	LogMsgStatsUnavailable = "Referral stats unavailable"
)
