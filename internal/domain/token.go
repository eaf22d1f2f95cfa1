package domain

import "time"

// Action identifies what redeeming an action token does. The meaning of
// Target depends on the action: the account to confirm for ActionVerifyEmail,
// the group to join for ActionJoinGroup, the conversation to join for
// ActionJoinChat.
type Action string

const (
	ActionVerifyEmail Action = "VERIFY_EMAIL"
	ActionJoinGroup   Action = "JOIN_GROUP"
	ActionJoinChat    Action = "JOIN_CHAT"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionVerifyEmail, ActionJoinGroup, ActionJoinChat:
		return true
	}
	return false
}

// ActionToken is a single/limited/unlimited-use, optionally time-limited,
// opaque token granting permission to perform one action on one target.
// URL is the primary key: a random URL-safe string with enough entropy that
// it cannot be guessed within its validity window.
type ActionToken struct {
	URL       string
	Action    Action
	Target    int64
	ExpiresAt *time.Time // nil = never time-expires
	UseLimit  *int       // nil = unlimited uses
	UseCount  int
	CreatedAt time.Time
}

// Exhausted reports whether the token's use limit has been reached.
// Tokens without a use limit are never exhausted.
func (t *ActionToken) Exhausted() bool {
	return t.UseLimit != nil && t.UseCount >= *t.UseLimit
}

// Expired reports whether the token's expiry has passed relative to now.
// Tokens without an expiry never expire.
func (t *ActionToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// Redeemable reports whether the token can be redeemed at now.
func (t *ActionToken) Redeemable(now time.Time) bool {
	return !t.Exhausted() && !t.Expired(now)
}
