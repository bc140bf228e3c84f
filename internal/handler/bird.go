package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/model"
)

type BirdHandler struct {
	store *db.Postgres
}

func NewBirdHandler(store *db.Postgres) *BirdHandler {
	return &BirdHandler{store: store}
}

// birdIdentifier is the URL form of a binomial name: lowercased, dashes
// for spaces.
func birdIdentifier(binomialName string) string {
	return strings.ToLower(strings.ReplaceAll(binomialName, " ", "-"))
}

// GetBirds godoc
// @Summary List birds
// @Tags birds
// @Produce json
// @Success 200 {object} model.BirdListResponse
// @Router /birds [get]
func (h *BirdHandler) GetBirds(c *gin.Context) {
	birds, err := h.store.Birds(c.Request.Context())
	if err != nil {
		writeServerError(c)
		return
	}

	items := make([]model.BirdResponse, 0, len(birds))
	for _, bird := range birds {
		items = append(items, model.BirdResponse{
			ID:           birdIdentifier(bird.BinomialName),
			BinomialName: bird.BinomialName,
		})
	}
	c.JSON(http.StatusOK, model.BirdListResponse{Items: items})
}

// GetBird godoc
// @Summary Get a bird by its binomial-name identifier
// @Tags birds
// @Produce json
// @Param id path string true "Bird identifier, e.g. pica-pica"
// @Success 200 {object} model.BirdResponse
// @Failure 404 {object} map[string]any
// @Router /birds/{id} [get]
func (h *BirdHandler) GetBird(c *gin.Context) {
	binomialName := strings.ReplaceAll(c.Param("id"), "-", " ")

	bird, err := h.store.BirdByBinomialName(c.Request.Context(), binomialName)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		writeServerError(c)
		return
	}

	c.JSON(http.StatusOK, model.BirdResponse{
		ID:           birdIdentifier(bird.BinomialName),
		BinomialName: bird.BinomialName,
	})
}
