package catalog

// Built-in catalog values
const (
	DefaultVersion             = "1.0"
	DefaultInitialMiningPower  = 0.0001
	DefaultTotalPool           = 10000
	DefaultTickIntervalMs      = 1000
	DefaultAnimationCooldownMs = 3000
	DefaultProgressMaxPower    = 0.1
)

// Built-in achievement ids
const (
	AchievementFirstMiner  = "first_miner"
	AchievementSpeedDemon  = "speed_demon"
	AchievementMillionaire = "millionaire"
)

// Supported catalog file extensions
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"
)

// Error messages
const (
	ErrMsgReadCatalogFailed    = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed   = "failed to parse catalog %s: %w"
	ErrMsgUnsupportedFormat    = "unsupported catalog format %q"
	ErrMsgDuplicateUnitID      = "duplicate unit id %d"
	ErrMsgDuplicateAchievement = "duplicate achievement id %q"
	ErrMsgCatalogNil           = "catalog is nil"
)
