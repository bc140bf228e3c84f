package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/errcode"
	"github.com/aveslog/backend/internal/locale"
	"github.com/aveslog/backend/internal/model"
	"github.com/aveslog/backend/internal/service"
)

type RegistrationHandler struct {
	svc     *service.RegistrationService
	store   *db.Postgres
	locales *locale.Repository
}

func NewRegistrationHandler(svc *service.RegistrationService, store *db.Postgres, locales *locale.Repository) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, store: store, locales: locales}
}

// negotiateLocale picks a locale for outbound mail: request cookie, then
// Accept-Language, then english.
func (h *RegistrationHandler) negotiateLocale(c *gin.Context) *locale.LoadedLocale {
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

// PostRegistrationRequest godoc
// @Summary Start account registration
// @Description Mails a registration link to the given address.
// @Tags registration
// @Accept json
// @Produce json
// @Param request body model.RegistrationRequest true "Email address"
// @Success 200 {object} map[string]any
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /registration-requests [post]
func (h *RegistrationHandler) PostRegistrationRequest(c *gin.Context) {
	var req model.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errcode.EmailInvalid, "Email invalid")
		return
	}

	_, err := h.svc.InitiateRegistration(c.Request.Context(), req.Email, h.negotiateLocale(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailInvalid):
			writeError(c, http.StatusBadRequest, errcode.EmailInvalid, "Email invalid")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(c, http.StatusBadRequest, errcode.EmailTaken, "Email taken")
		default:
			writeServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// GetRegistrationRequest godoc
// @Summary Fetch a pending registration
// @Tags registration
// @Produce json
// @Param token path string true "Registration token"
// @Success 200 {object} model.RegistrationResponse
// @Failure 404 {object} map[string]any
// @Router /registration-requests/{token} [get]
func (h *RegistrationHandler) GetRegistrationRequest(c *gin.Context) {
	registration, err := h.store.RegistrationByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		writeServerError(c)
		return
	}
	c.JSON(http.StatusOK, model.RegistrationResponse{Email: registration.Email})
}

// CreateAccount godoc
// @Summary Complete registration
// @Description Consumes a registration token and creates the account with a
// @Description linked birder profile.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body model.CreateAccountRequest true "Token and credentials"
// @Success 201 {object} model.AccountResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /accounts [post]
func (h *RegistrationHandler) CreateAccount(c *gin.Context) {
	var req model.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest,
			errcode.InvalidAccountRegistrationToken, "Registration request token invalid")
		return
	}

	registration, err := h.store.RegistrationByToken(c.Request.Context(), req.Token)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(c, http.StatusBadRequest,
				errcode.InvalidAccountRegistrationToken, "Registration request token invalid")
			return
		}
		writeServerError(c)
		return
	}

	account, err := h.svc.PerformRegistration(
		c.Request.Context(), registration.Email, registration.Token, req.Username, req.Password)
	if err != nil {
		var validation *service.ValidationError
		switch {
		case errors.As(err, &validation):
			writeValidationError(c, fieldErrors(validation))
		case errors.Is(err, service.ErrRegistrationMissing):
			writeError(c, http.StatusBadRequest,
				errcode.InvalidAccountRegistrationToken, "Registration request token invalid")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(c, http.StatusConflict, errcode.UsernameTaken, "Username taken")
		default:
			writeServerError(c)
		}
		return
	}

	birder, err := h.store.BirderByID(c.Request.Context(), account.BirderID)
	if err != nil {
		writeServerError(c)
		return
	}

	c.JSON(http.StatusCreated, model.AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Birder: model.BirderResponse{
			ID:   birder.ID,
			Name: birder.Name,
		},
	})
}

func fieldErrors(validation *service.ValidationError) []model.FieldError {
	var fieldErrs []model.FieldError
	if validation.InvalidUsername {
		fieldErrs = append(fieldErrs, model.FieldError{
			Code:    int(errcode.InvalidUsernameFormat),
			Field:   "username",
			Message: "Username need to adhere to format: ^[a-z0-9_.-]{5,32}$",
		})
	}
	if validation.InvalidPassword {
		fieldErrs = append(fieldErrs, model.FieldError{
			Code:    int(errcode.InvalidPasswordFormat),
			Field:   "password",
			Message: "Password need to adhere to format: ^.{8,128}$",
		})
	}
	return fieldErrs
}
