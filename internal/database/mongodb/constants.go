package mongodb

// Collection and field names
const (
	CollectionGameState = "game_state"
	FieldID             = "_id"
	FieldValue          = "value"
	FieldUpdatedAt      = "updated_at"
)

// Error messages
const (
	ErrMsgConnectFailed = "failed to connect to mongodb: %w"
	ErrMsgPingFailed    = "failed to ping mongodb: %w"
	ErrMsgGetFailed     = "failed to get state %s: %w"
	ErrMsgPutFailed     = "failed to put state %s: %w"
	ErrMsgDeleteFailed  = "failed to delete state %s: %w"
)
