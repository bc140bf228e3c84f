package model

// FieldError describes one field-level validation failure inside an
// ErrorResponse. Codes are the stable numeric values from the errcode package.
type FieldError struct {
	Code    int    `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FailureResponse is the unauthorized body used by the access-token endpoint.
// Clients branch on the HTTP status; the message is informative only.
type FailureResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RegistrationRequest struct {
	Email string `json:"email"`
}

type RegistrationResponse struct {
	Email string `json:"email"`
}

type CreateAccountRequest struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type BirderResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AccountResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Birder   BirderResponse `json:"birder"`
}

type AccountSummaryResponse struct {
	Username string `json:"username"`
	BirderID int64  `json:"birderId"`
}

type AccountListResponse struct {
	Items []AccountSummaryResponse `json:"items"`
}

type RefreshTokenResponse struct {
	ID             int64  `json:"id"`
	RefreshToken   string `json:"refreshToken"`
	ExpirationDate string `json:"expirationDate"`
}

type AccessTokenResponse struct {
	JWT       string `json:"jwt"`
	ExpiresIn int64  `json:"expiresIn"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PerformPasswordResetRequest struct {
	Password string `json:"password"`
}

type PasswordUpdateRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type BirdResponse struct {
	ID           string `json:"id"`
	BinomialName string `json:"binomialName"`
}

type BirdListResponse struct {
	Items []BirdResponse `json:"items"`
}

type CreateSightingRequest struct {
	BirdID int64  `json:"birdId"`
	Date   string `json:"date"`
	Time   string `json:"time,omitempty"`
}

type SightingResponse struct {
	ID       int64  `json:"id"`
	BirderID int64  `json:"birderId"`
	BirdID   int64  `json:"birdId"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
}

type SightingListResponse struct {
	Items []SightingResponse `json:"items"`
}

type LocaleListResponse struct {
	Items []string `json:"items"`
}
