package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/service"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

const (
	codeValidation    = "VALIDATION"
	codeNotFound      = "NOT_FOUND"
	codeDoubleBooking = "DOUBLE_BOOKING"
	codeStorage       = "STORAGE"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse[any]{Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondServiceError is the only place service errors become status codes.
func respondServiceError(c *gin.Context, err error) {
	var (
		validErr   *validation.Error
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		storageErr *domain.StorageError
	)

	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validErr.Message, Code: codeValidation, Field: validErr.Field})

	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound.Error(), Code: codeNotFound})

	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflict.Message, Code: codeDoubleBooking})

	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password."})

	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: storageErr.Err.Error(), Code: codeStorage})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}

	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a positive integer"})
		return 0, false
	}
	return id, true
}

func parseQueryBool(c *gin.Context, key string, defaultVal bool) bool {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return defaultVal
}
