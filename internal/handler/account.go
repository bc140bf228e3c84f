package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/model"
)

type AccountHandler struct {
	store *db.Postgres
}

func NewAccountHandler(store *db.Postgres) *AccountHandler {
	return &AccountHandler{store: store}
}

// GetAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param accessToken header string true "Access token"
// @Success 200 {object} model.AccountListResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.store.Accounts(c.Request.Context())
	if err != nil {
		writeServerError(c)
		return
	}

	items := make([]model.AccountSummaryResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, model.AccountSummaryResponse{
			Username: account.Username,
			BirderID: account.BirderID,
		})
	}
	c.JSON(http.StatusOK, model.AccountListResponse{Items: items})
}

// GetAccount godoc
// @Summary Get an account by username
// @Tags accounts
// @Produce json
// @Param accessToken header string true "Access token"
// @Param username path string true "Username"
// @Success 200 {object} model.AccountSummaryResponse
// @Failure 404 {object} map[string]any
// @Router /accounts/{username} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.store.AccountByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		writeServerError(c)
		return
	}

	c.JSON(http.StatusOK, model.AccountSummaryResponse{
		Username: account.Username,
		BirderID: account.BirderID,
	})
}

// GetAuthenticatedAccount godoc
// @Summary Get the authenticated account
// @Tags accounts
// @Produce json
// @Param accessToken header string true "Access token"
// @Success 200 {object} model.AccountResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /account [get]
func (h *AccountHandler) GetAuthenticatedAccount(c *gin.Context) {
	account := GetAuthAccount(c)

	birder, err := h.store.BirderByID(c.Request.Context(), account.BirderID)
	if err != nil {
		writeServerError(c)
		return
	}

	c.JSON(http.StatusOK, model.AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Birder:   model.BirderResponse{ID: birder.ID, Name: birder.Name},
	})
}
