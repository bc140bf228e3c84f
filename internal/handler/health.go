package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/locale"
	"github.com/aveslog/backend/internal/model"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Ping godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /health [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

type LocaleHandler struct {
	locales *locale.Repository
}

func NewLocaleHandler(locales *locale.Repository) *LocaleHandler {
	return &LocaleHandler{locales: locales}
}

// GetLocales godoc
// @Summary List enabled locale codes
// @Tags locales
// @Produce json
// @Success 200 {object} model.LocaleListResponse
// @Router /locales [get]
func (h *LocaleHandler) GetLocales(c *gin.Context) {
	codes, err := h.locales.EnabledCodes(c.Request.Context())
	if err != nil {
		writeServerError(c)
		return
	}
	if codes == nil {
		codes = []string{}
	}
	c.JSON(http.StatusOK, model.LocaleListResponse{Items: codes})
}
