package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aveslog/backend/internal/errcode"
	"github.com/aveslog/backend/internal/model"
	"github.com/aveslog/backend/internal/service"
)

const (
	authAccountKey = "auth_account"

	accessTokenHeader  = "accessToken"
	refreshTokenHeader = "refreshToken"
	requestIDHeader    = "X-Request-Id"
)

// RequireAuthentication guards a route behind a valid access token in the
// accessToken header. The four failure modes stay distinct so clients can
// branch: re-login, refresh, or give up.
func RequireAuthentication(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetHeader(accessTokenHeader)
		if accessToken == "" {
			writeError(c, http.StatusUnauthorized,
				errcode.AuthorizationRequired, "Authorization required")
			c.Abort()
			return
		}

		account, err := auth.AccountByAccessToken(c.Request.Context(), accessToken)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenInvalid):
				writeError(c, http.StatusUnauthorized,
					errcode.AccessTokenInvalid, "Access token invalid")
			case errors.Is(err, service.ErrTokenExpired):
				writeError(c, http.StatusUnauthorized,
					errcode.AccessTokenExpired, "Access token expired")
			case errors.Is(err, service.ErrAccountMissing):
				writeError(c, http.StatusUnauthorized,
					errcode.AccountMissing, "Authorized account gone")
			default:
				writeServerError(c)
			}
			c.Abort()
			return
		}

		c.Set(authAccountKey, account)
		c.Next()
	}
}

// GetAuthAccount returns the account set by RequireAuthentication, or nil.
func GetAuthAccount(c *gin.Context) *model.Account {
	if value, ok := c.Get(authAccountKey); ok {
		if account, ok := value.(*model.Account); ok {
			return account
		}
	}
	return nil
}

// RequestID tags every request with an id for log correlation, honoring an
// id supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
