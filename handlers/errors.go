package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"food-ordering-api/workflow"
)

// respondWorkflowError maps the workflow error taxonomy onto HTTP statuses.
// Every workflow failure is recoverable and turned into a user-visible
// message here; nothing crashes the process.
func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrStateConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
