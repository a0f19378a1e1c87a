package player

const usernameLockPrefix = "username:"

const ErrMsgUsernameRequired = "username is required"

// Log messages
const (
	LogMsgPlayerRegistered = "Player registered"
	LogMsgPlayerExists     = "Player already registered"
	LogMsgPublishFailed    = "Failed to publish player event"
)
