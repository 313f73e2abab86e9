package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/directory"
	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/services"
	"github.com/fsa-drive/admin-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	users services.UserService
	index *directory.Index
}

func NewUserHandler(users services.UserService, index *directory.Index, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		users:       users,
		index:       index,
	}
}

// ListUsers returns the whole directory, optionally filtered by the name or
// email query. The filter runs against the snapshot index, not the store.
func (h *UserHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	if query := c.Query("q"); query != "" {
		users := h.index.Search(query)
		c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list users")
		h.RespondError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

// SearchUsers filters the directory by a case-insensitive substring of
// first name, last name, or email.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Search query parameter 'q' is required",
		})
		return
	}

	h.LogRequest(c, "Searching users", "query", query)

	users := h.index.Search(query)
	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")

	h.LogRequest(c, "Getting user", "user_id", userID)

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		h.LogError(c, err, "Failed to get user")
		h.RespondError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating user", "email", req.Email)

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		h.LogError(c, err, "Failed to create user")
		h.RespondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating user", "user_id", userID)

	user, err := h.users.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.LogError(c, err, "Failed to update user")
		h.RespondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	h.LogRequest(c, "Deleting user", "user_id", userID)

	if err := h.users.Delete(c.Request.Context(), userID, GetAccountIDFromContext(c)); err != nil {
		h.LogError(c, err, "Failed to delete user")
		h.RespondError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID := c.Param("id")

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Resetting password", "user_id", userID)

	if err := h.users.ResetPassword(c.Request.Context(), userID, req.Password); err != nil {
		h.LogError(c, err, "Failed to reset password")
		h.RespondError(c, err, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
