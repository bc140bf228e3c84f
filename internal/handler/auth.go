package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/errcode"
	"github.com/aveslog/backend/internal/locale"
	"github.com/aveslog/backend/internal/model"
	"github.com/aveslog/backend/internal/service"
)

type AuthHandler struct {
	auth    *service.AuthService
	resets  *service.PasswordResetService
	locales *locale.Repository
}

func NewAuthHandler(auth *service.AuthService, resets *service.PasswordResetService, locales *locale.Repository) *AuthHandler {
	return &AuthHandler{auth: auth, resets: resets, locales: locales}
}

func (h *AuthHandler) negotiateLocale(c *gin.Context) *locale.LoadedLocale {
	codes, err := h.locales.EnabledCodes(c.Request.Context())
	if err != nil || len(codes) == 0 {
		return locale.Empty()
	}
	code := locale.NewDeterminer(codes).Determine(c.Request)
	loaded, ok, err := h.locales.LoadByCode(c.Request.Context(), code)
	if err != nil || !ok {
		return locale.Empty()
	}
	return loaded
}

// PostRefreshToken godoc
// @Summary Log in and issue a refresh token
// @Tags authentication
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Success 201 {object} model.RefreshTokenResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /authentication/refresh-token [post]
func (h *AuthHandler) PostRefreshToken(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")

	account, err := h.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsIncorrect) {
			writeError(c, http.StatusUnauthorized,
				errcode.CredentialsIncorrect, "Credentials incorrect")
			return
		}
		writeServerError(c)
		return
	}

	refreshToken, err := h.auth.IssueRefreshToken(c.Request.Context(), account.ID)
	if err != nil {
		writeServerError(c)
		return
	}

	c.JSON(http.StatusCreated, model.RefreshTokenResponse{
		ID:             refreshToken.ID,
		RefreshToken:   refreshToken.Token,
		ExpirationDate: refreshToken.ExpirationDate.Format(time.RFC3339),
	})
}

// DeleteRefreshToken godoc
// @Summary Revoke a refresh token
// @Description Owner-only; revoking an already absent token succeeds.
// @Tags authentication
// @Produce json
// @Param id path int true "Refresh token id"
// @Success 204
// @Failure 401 {object} model.ErrorResponse
// @Router /authentication/refresh-token/{id} [delete]
func (h *AuthHandler) DeleteRefreshToken(c *gin.Context) {
	account := GetAuthAccount(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	refreshToken, err := h.auth.RefreshTokenByID(c.Request.Context(), id)
	if err != nil {
		// Already gone counts as revoked.
		c.Status(http.StatusNoContent)
		return
	}
	if refreshToken.AccountID != account.ID {
		writeError(c, http.StatusUnauthorized,
			errcode.AuthorizationRequired, "Authorization required")
		return
	}

	if err := h.auth.RemoveRefreshToken(c.Request.Context(), id); err != nil {
		writeServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAccessToken godoc
// @Summary Mint an access token from a refresh token
// @Tags authentication
// @Produce json
// @Param refreshToken header string true "Refresh token"
// @Success 200 {object} model.AccessTokenResponse
// @Failure 401 {object} model.FailureResponse
// @Router /authentication/access-token [get]
func (h *AuthHandler) GetAccessToken(c *gin.Context) {
	refreshJWT := c.GetHeader(refreshTokenHeader)
	if refreshJWT == "" {
		writeUnauthorizedFailure(c, "refresh token required")
		return
	}

	accessToken, err := h.auth.AccessTokenFromRefresh(c.Request.Context(), refreshJWT)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenInvalid):
			writeUnauthorizedFailure(c, "refresh token invalid")
		case errors.Is(err, service.ErrTokenExpired):
			writeUnauthorizedFailure(c, "refresh token expired")
		case errors.Is(err, service.ErrRefreshTokenRevoked):
			writeUnauthorizedFailure(c, "refresh token revoked")
		default:
			writeServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, model.AccessTokenResponse{
		JWT:       accessToken.JWT,
		ExpiresIn: int64(time.Until(accessToken.ExpirationDate).Seconds()),
	})
}

// PostPasswordResetEmail godoc
// @Summary Request a password reset email
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body model.PasswordResetRequest true "Email address"
// @Success 200 {object} map[string]any
// @Failure 400 {object} model.ErrorResponse
// @Router /authentication/password-reset [post]
func (h *AuthHandler) PostPasswordResetEmail(c *gin.Context) {
	var req model.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest,
			errcode.EmailMissing, "E-mail not associated with any account")
		return
	}

	err := h.resets.InitiatePasswordReset(c.Request.Context(), req.Email, h.negotiateLocale(c))
	if err != nil {
		if errors.Is(err, service.ErrEmailMissing) {
			writeError(c, http.StatusBadRequest,
				errcode.EmailMissing, "E-mail not associated with any account")
			return
		}
		writeServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// PostPasswordReset godoc
// @Summary Consume a password reset token
// @Tags authentication
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body model.PerformPasswordResetRequest true "New password"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /authentication/password-reset/{token} [post]
func (h *AuthHandler) PostPasswordReset(c *gin.Context) {
	var req model.PerformPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}

	err := h.resets.PerformPasswordReset(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrResetTokenMissing) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		writeServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// PostPassword godoc
// @Summary Change password
// @Description Authenticated change; revokes all refresh tokens on success.
// @Tags authentication
// @Accept json
// @Produce json
// @Param accessToken header string true "Access token"
// @Param request body model.PasswordUpdateRequest true "Old and new password"
// @Success 204
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /authentication/password [post]
func (h *AuthHandler) PostPassword(c *gin.Context) {
	account := GetAuthAccount(c)

	var req model.PasswordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errcode.PasswordInvalid, "New password invalid")
		return
	}

	correct, err := h.auth.IsAccountPasswordCorrect(c.Request.Context(), account, req.OldPassword)
	if err != nil {
		writeServerError(c)
		return
	}
	if !correct {
		writeError(c, http.StatusUnauthorized,
			errcode.OldPasswordIncorrect, "Old password incorrect")
		return
	}

	if !service.IsValidPassword(req.NewPassword) {
		writeError(c, http.StatusBadRequest, errcode.PasswordInvalid, "New password invalid")
		return
	}

	if err := h.resets.UpdatePassword(c.Request.Context(), account, req.NewPassword); err != nil {
		writeServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeUnauthorizedFailure(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, model.FailureResponse{
		Status:  "failure",
		Message: message,
	})
}
