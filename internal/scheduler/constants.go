package scheduler

// LogMsgTickSkipped is logged when the worker pool rejects a scheduled job
const LogMsgTickSkipped = "Scheduled job skipped, worker queue full"
