package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trivia-api/internal/trivia"
)

var errorMessages = map[int]string{
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

// writeServiceError maps service errors to the two user-visible kinds: absent
// resources are 404, everything else is 422.
func (a *API) writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, trivia.ErrNotFound) {
		writeError(c, http.StatusNotFound)
		return
	}

	a.writeUnprocessable(c, err)
}

func (a *API) writeUnprocessable(c *gin.Context, err error) {
	fields := []zap.Field{
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}

	var validationErr *trivia.ValidationError
	if errors.As(err, &validationErr) {
		a.logger.Info("rejected request", fields...)
	} else {
		a.logger.Warn("request failed", fields...)
	}
	writeError(c, http.StatusUnprocessableEntity)
}

func writeError(c *gin.Context, statusCode int) {
	message, ok := errorMessages[statusCode]
	if !ok {
		message = strings.ToLower(http.StatusText(statusCode))
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	})
}

func writeMethodNotAllowed(c *gin.Context) {
	writeError(c, http.StatusMethodNotAllowed)
}

// parsePage falls back to the first page when the parameter is missing or
// not an integer.
func parsePage(c *gin.Context) int {
	value := strings.TrimSpace(c.Query("page"))
	if value == "" {
		return 1
	}
	page, err := strconv.Atoi(value)
	if err != nil {
		return 1
	}
	return page
}

func parseIDParam(c *gin.Context, key string) (int, bool) {
	id, err := strconv.Atoi(c.Param(key))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
