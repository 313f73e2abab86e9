package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/utils"
)

// DriveHandler resolves subjects to their drive folder links for the
// launcher screen.
type DriveHandler struct {
	BaseHandler
	links    map[string]string
	rootLink string
}

func NewDriveHandler(links map[string]string, logger utils.Logger) *DriveHandler {
	return &DriveHandler{
		BaseHandler: NewBaseHandler(logger),
		links:       links,
		rootLink:    links[catalog.FullDrive],
	}
}

// GetDriveLink returns the folder URL for a subject. A caller with full
// drive access gets the root link regardless of subject; everyone else must
// hold the subject in their record.
func (h *DriveHandler) GetDriveLink(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Query parameter 'subject' is required",
		})
		return
	}

	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	if user.IsFullDrive() {
		if h.rootLink == "" {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: "No root drive link configured",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": subject, "link": h.rootLink, "full_drive": true})
		return
	}

	allowed := false
	for _, s := range user.Subjects {
		if s == subject {
			allowed = true
			break
		}
	}
	if !allowed {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Subject is not in your selection",
		})
		return
	}

	link, ok := h.links[subject]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "No drive link configured for subject",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subject, "link": link})
}
