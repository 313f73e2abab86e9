package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/roster"
	"github.com/fsa-drive/admin-service/internal/services"
	"github.com/fsa-drive/admin-service/internal/utils"
)

type ImportHandler struct {
	BaseHandler
	importer services.ImportService
}

func NewImportHandler(importer services.ImportService, logger utils.Logger) *ImportHandler {
	return &ImportHandler{
		BaseHandler: NewBaseHandler(logger),
		importer:    importer,
	}
}

// ImportUsers accepts a roster upload (.csv or .xlsx) and bulk-provisions
// accounts from it. A validation failure anywhere rejects the whole file;
// provisioning failures are reported per row in the result.
func (h *ImportHandler) ImportUsers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Roster file upload 'file' is required",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Importing roster", "filename", fileHeader.Filename, "size", fileHeader.Size)

	file, err := fileHeader.Open()
	if err != nil {
		h.LogError(c, err, "Failed to open roster upload")
		h.RespondError(c, err, "Failed to open roster upload")
		return
	}
	defer file.Close()

	rows, err := roster.Read(fileHeader.Filename, file)
	if err != nil {
		h.LogError(c, err, "Failed to parse roster")
		h.RespondError(c, err, "Failed to parse roster")
		return
	}

	result, err := h.importer.Import(c.Request.Context(), rows)
	if err != nil {
		h.LogError(c, err, "Roster rejected")
		h.RespondError(c, err, "Roster rejected")
		return
	}

	c.JSON(http.StatusOK, result)
}
