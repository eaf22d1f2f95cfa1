package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// Credential errors. Both mean "treat the caller as unauthenticated";
// they are separate so callers can log the difference.
var (
	// ErrMalformedCredential is returned when a credential string does not
	// match the "{accountId}.{signature}" shape.
	ErrMalformedCredential = errors.New("malformed credential")

	// ErrInvalidSignature is returned when the account does not exist or its
	// stored signature differs from the presented one.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Action token redemption errors. ErrTokenExpired and ErrTokenOverused are
// terminal: the token is deleted as a side effect of the failed redemption.
var (
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenOverused = errors.New("token overused")
)

// Conversation log errors.
var (
	// ErrSenderNotMember is returned by append when the sender is not a
	// member of the conversation at the time of the append.
	ErrSenderNotMember = errors.New("sender is not a conversation member")

	// ErrEntryNotFound is returned when a log scan finishes without finding
	// the requested entry id.
	ErrEntryNotFound = errors.New("log entry not found")

	// ErrConversationLogNotFound is returned by every log operation invoked
	// on a conversation id with no backing log.
	ErrConversationLogNotFound = errors.New("conversation log not found")
)
