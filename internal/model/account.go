package model

import "time"

type Account struct {
	ID        int64
	Username  string
	Email     string
	BirderID  int64
	CreatedAt time.Time
}

// HashedPassword is the stored credential for one account. Salt is
// base64-encoded random bytes; SaltedHash is the hex-encoded PBKDF2 output.
type HashedPassword struct {
	AccountID  int64
	Salt       string
	SaltedHash string
}

// AccountRegistration is a pending signup. At most one live registration
// exists per email; the row is deleted when the account is created.
type AccountRegistration struct {
	ID        int64
	Email     string
	Token     string
	CreatedAt time.Time
}

// PasswordResetToken authorizes a single password change. A new reset
// request overwrites the account's previous token.
type PasswordResetToken struct {
	AccountID int64
	Token     string
	CreatedAt time.Time
}

// Birder is the public profile linked 1:1 to an account, used for
// sighting attribution.
type Birder struct {
	ID   int64
	Name string
}
