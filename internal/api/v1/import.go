package v1

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skilldojo/internal/config"
	"skilldojo/internal/importer"
)

type importResponse struct {
	Summary importer.ImportSummary   `json:"summary"`
	Events  []importer.ProgressEvent `json:"events"`
}

// Import accepts a workbook upload and runs the import synchronously,
// returning the collected progress events and the final summary.
// POST /api/import (multipart, field "file"; ?clear=true wipes existing rows)
func (h *Handler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .xlsx workbooks are supported"})
		return
	}

	uploadPath := config.GetDataPath(h.cfg, "uploads",
		fmt.Sprintf("%s_%s", uuid.New().String()[:8], filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("save upload: %v", err)})
		return
	}

	coord := importer.NewCoordinator(h.store)
	ch := coord.Import(importer.ImportOptions{
		FilePath:         uploadPath,
		OriginalFilename: file.Filename,
		OperatorSheet:    h.cfg.Excel.OperatorSheet,
		AllocationSheet:  h.cfg.Excel.AllocationSheet,
		ClearExisting:    c.Query("clear") == "true",
	})

	resp := importResponse{Events: []importer.ProgressEvent{}}
	failed := ""
	for evt := range ch {
		resp.Events = append(resp.Events, evt)
		switch evt.Type {
		case "error":
			failed = evt.Message
		case "done":
			if s, ok := evt.Data.(importer.ImportSummary); ok {
				resp.Summary = s
			}
		}
	}

	if failed != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": failed, "events": resp.Events})
		return
	}
	c.JSON(http.StatusOK, resp)
}
