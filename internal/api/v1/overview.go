package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilldojo/internal/engine"
)

// GetOverview returns the per-status counters for the summary cards.
// GET /api/overview
func (h *Handler) GetOverview(c *gin.Context) {
	records, err := h.loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, engine.Aggregate(records, h.today(c)))
}

// GetScheduledEmployeesSkills returns the per-employee grouped view, each
// skill entry annotated with its derived status.
// GET /api/scheduled-employees-skills
func (h *Handler) GetScheduledEmployeesSkills(c *gin.Context) {
	records, err := h.loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lookups, err := h.loadLookups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	groups, dropped := engine.GroupByEmployee(records, lookups)
	engine.AnnotateGroups(groups, h.today(c))

	c.JSON(http.StatusOK, gin.H{
		"items":   groups,
		"total":   len(groups),
		"dropped": dropped,
	})
}
