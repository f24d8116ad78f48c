package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse describes whether the system has data to work with.
type StatusResponse struct {
	Initialized    bool `json:"initialized"`
	TotalEmployees int  `json:"totalEmployees"`
	TotalRecords   int  `json:"totalRecords"`
}

// GetStatus reports system readiness.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	employees, err := h.store.CountEmployees()
	if err != nil {
		employees = 0
	}
	records, err := h.store.CountAllocations()
	if err != nil {
		records = 0
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    records > 0,
		TotalEmployees: employees,
		TotalRecords:   records,
	})
}
