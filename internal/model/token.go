package model

import "time"

// RefreshToken is a long-lived signed credential persisted in the store.
// It is looked up by its raw JWT string when minting access tokens and is
// deleted on revocation.
type RefreshToken struct {
	ID             int64
	Token          string
	AccountID      int64
	ExpirationDate time.Time
}

// AccessToken is ephemeral: validity is purely cryptographic plus expiry,
// it is never persisted.
type AccessToken struct {
	JWT            string
	AccountID      int64
	ExpirationDate time.Time
}
