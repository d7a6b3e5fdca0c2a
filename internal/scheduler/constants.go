package scheduler

// Log messages for scheduled job dispatch
const (
	LogMsgScheduledJobFailed  = "Scheduled job failed"
	LogMsgScheduledJobSkipped = "Scheduled job skipped, previous run still pending"
)
