package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/utils"
)

// ErrorResponse is the error envelope all handlers return.
type ErrorResponse struct {
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries the shared handler plumbing: request-scoped logging
// and the service-error to HTTP-status mapping.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.FromContext(c, h.logger).Error(msg, append(args, "error", err)...)
}

// RespondError maps the service error taxonomy to an HTTP status. Row-level
// import errors keep their structured detail so the client can point at the
// offending cell.
func (h *BaseHandler) RespondError(c *gin.Context, err error, msg string) {
	var rowErr *models.ImportRowError
	switch {
	case errors.As(err, &rowErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: msg,
			Details: rowErr,
		})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: msg,
			Details: err.Error(),
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: msg,
			Details: err.Error(),
		})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: msg,
			Details: err.Error(),
		})
	case errors.Is(err, models.ErrExternalService):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "external_service_error",
			Message: msg,
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: msg,
			Details: err.Error(),
		})
	}
}
