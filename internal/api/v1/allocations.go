package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skilldojo/internal/engine"
	"skilldojo/internal/model"
)

type listAllocationsResponse struct {
	Items []model.AllocationRecord `json:"items"`
	Total int                      `json:"total"`
}

// ListAllocations returns allocation rows filtered by derived status and
// date window.
// GET /api/multiskilling?status=scheduled&range=this-week
func (h *Handler) ListAllocations(c *gin.Context) {
	records, err := h.loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	statusFilter := c.DefaultQuery("status", engine.StatusFilterAll)
	rangeFilter := c.DefaultQuery("range", engine.RangeAllTime)

	items := engine.Filter(records, statusFilter, rangeFilter, h.today(c))
	c.JSON(http.StatusOK, listAllocationsResponse{Items: items, Total: len(items)})
}

// UpcomingAllocations returns records whose interval overlaps the next N days
// (inclusive of today), for the notification feed.
// GET /api/multiskilling/upcoming?days=7
func (h *Handler) UpcomingAllocations(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	records, err := h.loadRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := h.today(c)
	winEnd := today.AddDate(0, 0, days-1)

	items := []model.AllocationRecord{}
	for i := range records {
		if engine.Overlaps(&records[i], today, winEnd) {
			items = append(items, records[i])
		}
	}
	c.JSON(http.StatusOK, listAllocationsResponse{Items: items, Total: len(items)})
}

// GetAllocation fetches one allocation by id.
// GET /api/multiskilling/:id
func (h *Handler) GetAllocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rec, err := h.store.GetAllocation(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "allocation not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateAllocation inserts one allocation row.
// POST /api/multiskilling
func (h *Handler) CreateAllocation(c *gin.Context) {
	var rec model.AllocationRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if rec.EmployeeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee is required"})
		return
	}
	if rec.Status == "" {
		rec.Status = "scheduled"
	}

	id, err := h.store.InsertAllocation(&rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rec.ID = id
	c.JSON(http.StatusCreated, rec)
}

// UpdateAllocation applies a partial update to one allocation.
// PATCH /api/multiskilling/:id
func (h *Handler) UpdateAllocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	existing, err := h.store.GetAllocation(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "allocation not found"})
		return
	}

	// Bind over the loaded record so omitted fields keep their values.
	if err := c.ShouldBindJSON(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	existing.ID = id

	if err := h.store.UpdateAllocation(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeleteAllocation removes one allocation.
// DELETE /api/multiskilling/:id
func (h *Handler) DeleteAllocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	existing, err := h.store.GetAllocation(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "allocation not found"})
		return
	}

	if err := h.store.DeleteAllocation(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
