// Package errcode defines the stable numeric error codes exposed in error
// response bodies. Clients branch on these values, never on message text,
// so existing values must not change.
package errcode

type Code int

const (
	EmailInvalid                    Code = 1
	EmailTaken                      Code = 2
	UsernameTaken                   Code = 3
	CredentialsIncorrect            Code = 4
	AuthorizationRequired           Code = 5
	EmailMissing                    Code = 6
	OldPasswordIncorrect            Code = 7
	AccessTokenInvalid              Code = 8
	AccessTokenExpired              Code = 9
	PasswordInvalid                 Code = 10
	AccountMissing                  Code = 11
	RateLimitExceeded               Code = 12
	InvalidAccountRegistrationToken Code = 13
	ValidationFailed                Code = 14
	InvalidUsernameFormat           Code = 15
	InvalidPasswordFormat           Code = 16
	InvalidLocaleCode               Code = 17
)
