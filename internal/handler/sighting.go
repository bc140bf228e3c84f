package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/errcode"
	"github.com/aveslog/backend/internal/model"
	"github.com/aveslog/backend/internal/service"
)

const (
	sightingDateLayout = "2006-01-02"
	sightingTimeLayout = "15:04"
)

type SightingHandler struct {
	svc *service.SightingService
}

func NewSightingHandler(svc *service.SightingService) *SightingHandler {
	return &SightingHandler{svc: svc}
}

func sightingResponse(s *model.Sighting) model.SightingResponse {
	resp := model.SightingResponse{
		ID:       s.ID,
		BirderID: s.BirderID,
		BirdID:   s.BirdID,
		Date:     s.SightingDate.Format(sightingDateLayout),
	}
	if s.SightingTime != nil {
		resp.Time = s.SightingTime.Format(sightingTimeLayout)
	}
	return resp
}

// GetBirderSightings godoc
// @Summary List a birder's sightings
// @Tags sightings
// @Produce json
// @Param accessToken header string true "Access token"
// @Param birderId path int true "Birder id"
// @Success 200 {object} model.SightingListResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /profile/{birderId}/sightings [get]
func (h *SightingHandler) GetBirderSightings(c *gin.Context) {
	birderID, err := strconv.ParseInt(c.Param("birderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}

	sightings, err := h.svc.SightingsByBirder(c.Request.Context(), birderID)
	if err != nil {
		writeServerError(c)
		return
	}

	items := make([]model.SightingResponse, 0, len(sightings))
	for i := range sightings {
		items = append(items, sightingResponse(&sightings[i]))
	}
	c.JSON(http.StatusOK, model.SightingListResponse{Items: items})
}

// PostSighting godoc
// @Summary Record a sighting
// @Tags sightings
// @Accept json
// @Produce json
// @Param accessToken header string true "Access token"
// @Param request body model.CreateSightingRequest true "Sighting"
// @Success 201 {object} model.SightingResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /sightings [post]
func (h *SightingHandler) PostSighting(c *gin.Context) {
	account := GetAuthAccount(c)

	var req model.CreateSightingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errcode.ValidationFailed, "Validation failed")
		return
	}

	date, err := time.Parse(sightingDateLayout, req.Date)
	if err != nil {
		writeError(c, http.StatusBadRequest, errcode.ValidationFailed, "Validation failed")
		return
	}
	var timeOfDay *time.Time
	if req.Time != "" {
		parsed, err := time.Parse(sightingTimeLayout, req.Time)
		if err != nil {
			writeError(c, http.StatusBadRequest, errcode.ValidationFailed, "Validation failed")
			return
		}
		timeOfDay = &parsed
	}

	sighting, err := h.svc.CreateSighting(c.Request.Context(), account.BirderID, req.BirdID, date, timeOfDay)
	if err != nil {
		if errors.Is(err, service.ErrBirdMissing) {
			writeError(c, http.StatusBadRequest, errcode.ValidationFailed, "Validation failed")
			return
		}
		writeServerError(c)
		return
	}
	c.JSON(http.StatusCreated, sightingResponse(sighting))
}

// GetSighting godoc
// @Summary Get a sighting
// @Tags sightings
// @Produce json
// @Param accessToken header string true "Access token"
// @Param id path int true "Sighting id"
// @Success 200 {object} model.SightingResponse
// @Failure 404 {object} map[string]any
// @Router /sightings/{id} [get]
func (h *SightingHandler) GetSighting(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}

	sighting, err := h.svc.SightingByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSightingMissing) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		writeServerError(c)
		return
	}
	c.JSON(http.StatusOK, sightingResponse(sighting))
}

// DeleteSighting godoc
// @Summary Delete a sighting
// @Description Owner only.
// @Tags sightings
// @Produce json
// @Param accessToken header string true "Access token"
// @Param id path int true "Sighting id"
// @Success 204
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} map[string]any
// @Router /sightings/{id} [delete]
func (h *SightingHandler) DeleteSighting(c *gin.Context) {
	account := GetAuthAccount(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}

	err = h.svc.DeleteSighting(c.Request.Context(), id, account.BirderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSightingMissing):
			c.JSON(http.StatusNotFound, gin.H{})
		case errors.Is(err, service.ErrNotSightingOwner):
			writeError(c, http.StatusUnauthorized,
				errcode.AuthorizationRequired, "Authorization required")
		default:
			writeServerError(c)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
