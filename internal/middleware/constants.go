package middleware

// HTTP header names
const (
	// HeaderPlayerID carries the acting player's id on every player-scoped request
	HeaderPlayerID = "X-Player-ID"

	// HeaderRetryAfter tells a rate-limited client when to come back
	HeaderRetryAfter = "Retry-After"
)

// QueryPlayerID is the query parameter fallback for HeaderPlayerID
const QueryPlayerID = "player_id"

// RetryAfterSeconds is sent with every 429 response
const RetryAfterSeconds = "1"

// HTTP error messages for middleware responses
const (
	ErrMsgMissingPlayerID = "Missing X-Player-ID header"
	ErrMsgInvalidPlayerID = "Invalid X-Player-ID header"
	ErrMsgUnknownPlayer   = "Player not found"
	ErrMsgIdentityFailed  = "Failed to resolve player"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages
const (
	LogMsgIdentityLookupFailed = "Player identity lookup failed"
	LogMsgUnknownPlayer        = "Request for unknown player"
	LogMsgRateLimited          = "Request rate limited"
)
