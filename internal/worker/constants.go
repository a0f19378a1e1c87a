package worker

import "time"

// Pool defaults
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16

	// DefaultJobTimeout bounds a single job run
	DefaultJobTimeout = 30 * time.Second
)

// Job names
const JobNameBonusGeneration = "bonus_generation"

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobPanic  = "Worker job panicked"
	LogMsgQueueFull       = "Worker queue full, job dropped"
	LogMsgBonusGenerated  = "Scheduled bonus generation created a bonus"
	LogMsgPoolFull        = "Scheduled bonus generation skipped, pool full"
)
