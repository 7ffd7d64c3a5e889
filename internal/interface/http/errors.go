package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/plateforme/services-api/internal/application"
	"github.com/plateforme/services-api/pkg/response"
)

// respondError maps application errors onto the wire taxonomy: validation
// failures carry field details as 400, out-of-scope records read as 404,
// anything else is a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, "validation failed", verr.Details)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// idParam parses the :id path segment; malformed ids read as 404, matching
// a route that never existed.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, "not found", nil)
		return 0, false
	}
	return id, true
}
