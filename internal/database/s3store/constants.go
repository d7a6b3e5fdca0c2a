package s3store

// Object naming
const (
	ObjectSuffix = ".json"
	ContentType  = "application/json"
)

// Error messages
const (
	ErrMsgEmptyBucket   = "empty bucket name"
	ErrMsgLoadConfig    = "unable to load s3 config: %w"
	ErrMsgGetFailed     = "failed to get object %s: %w"
	ErrMsgReadFailed    = "failed to read object %s: %w"
	ErrMsgPutFailed     = "failed to put object %s: %w"
	ErrMsgDeleteFailed  = "failed to delete object %s: %w"
	ErrMsgHeadBucketErr = "bucket %s not reachable: %w"
)
