package domain

import "time"

// Role represents the account's role on the platform.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Account represents a signable platform account (student, teacher or admin).
//
// Signature is the account's current session signature: an opaque hex string
// regenerated on every credential issuance. A credential is valid only while
// its signature equals this stored value, so rotating it invalidates all
// previously issued credential strings at once. A new account starts with an
// empty (never-valid) signature.
type Account struct {
	ID           int64
	Role         Role
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Confirmed    bool
	Signature    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsStaleUnconfirmed reports whether the account is unconfirmed and older
// than the grace window, i.e. eligible for deletion by the sweeper.
func (a *Account) IsStaleUnconfirmed(now time.Time, grace time.Duration) bool {
	return !a.Confirmed && now.Sub(a.CreatedAt) > grace
}
