package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/services"
	"github.com/fsa-drive/admin-service/internal/utils"
)

// SessionHandler persists and restores the caller's confirmed subject
// selection between sign-ins.
type SessionHandler struct {
	BaseHandler
	sessions services.SessionService
}

func NewSessionHandler(sessions services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: NewBaseHandler(logger),
		sessions:    sessions,
	}
}

func (h *SessionHandler) SaveSession(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	email := c.GetString("user_email")
	h.LogRequest(c, "Saving session", "email", email)

	if err := h.sessions.Save(c.Request.Context(), email, req.Subjects); err != nil {
		h.LogError(c, err, "Failed to save session")
		h.RespondError(c, err, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session saved"})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	email := c.GetString("user_email")

	session, err := h.sessions.Load(c.Request.Context(), email)
	if err != nil {
		h.RespondError(c, err, "No saved session")
		return
	}

	c.JSON(http.StatusOK, session)
}
