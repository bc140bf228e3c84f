package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aveslog/backend/internal/errcode"
	"github.com/aveslog/backend/internal/model"
)

func writeError(c *gin.Context, status int, code errcode.Code, message string) {
	c.JSON(status, model.ErrorResponse{
		Code:    int(code),
		Message: message,
	})
}

func writeServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

func writeValidationError(c *gin.Context, fieldErrors []model.FieldError) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Code:    int(errcode.ValidationFailed),
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}
