package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skilldojo/internal/config"
	"skilldojo/internal/exporter"
	"skilldojo/internal/model"
)

type exportRequest struct {
	Status string `json:"status"`
	Range  string `json:"range"`
	Today  string `json:"today"`
}

// Export writes the schedule workbook to the exports directory and returns a
// one-time download token.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	today := h.today(c)
	if req.Today != "" {
		t, err := time.Parse(model.DateLayout, req.Today)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "today must be YYYY-MM-DD"})
			return
		}
		today = t
	}

	f, err := exporter.NewExporter(h.store).Export(exporter.ExportOptions{
		Today:        today,
		StatusFilter: req.Status,
		RangeFilter:  req.Range,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	exportID := uuid.New().String()
	filename := fmt.Sprintf("schedule_%s_%s.xlsx", today.Format(model.DateLayout), exportID[:8])
	exportPath := config.GetDataPath(h.cfg, "exports", filename)
	if err := f.SaveAs(exportPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("save export: %v", err)})
		return
	}

	token := h.downloads.put(exportPath, filename, 15*time.Minute)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
	})
}

// DownloadExport streams a previously exported workbook.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}

	c.FileAttachment(item.filePath, item.filename)
	h.downloads.delete(token)
}
