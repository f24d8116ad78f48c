package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skilldojo/internal/config"
	"skilldojo/internal/engine"
	"skilldojo/internal/model"
	"skilldojo/internal/store"
)

// Handler serves the allocation API. All status computation is delegated to
// the engine, with the reference date resolved once per request.
type Handler struct {
	store     *store.Store
	cfg       *config.AppConfig
	downloads *exportDownloadStore
}

// NewHandler creates an API handler.
func NewHandler(store *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:     store,
		cfg:       cfg,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes mounts the API under the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System status
	router.GET("/status", h.GetStatus)

	// Allocation records
	router.GET("/multiskilling", h.ListAllocations)
	router.POST("/multiskilling", h.CreateAllocation)
	router.GET("/multiskilling/:id", h.GetAllocation)
	router.PATCH("/multiskilling/:id", h.UpdateAllocation)
	router.DELETE("/multiskilling/:id", h.DeleteAllocation)
	router.GET("/multiskilling/upcoming", h.UpcomingAllocations)

	// Overview counters and grouped detail view
	router.GET("/overview", h.GetOverview)
	router.GET("/scheduled-employees-skills", h.GetScheduledEmployeesSkills)

	// Catalogs
	router.GET("/operators-master", h.ListEmployees)
	router.POST("/operators-master", h.CreateEmployee)
	router.GET("/skill-matrix", h.ListDepartments)
	router.POST("/skill-matrix", h.CreateDepartment)
	router.GET("/sections", h.ListSections)
	router.POST("/sections", h.CreateSection)
	router.GET("/operationlist", h.ListOperations)
	router.POST("/operationlist", h.CreateOperation)

	// Workbook import/export
	router.POST("/import", h.Import)
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}

// today resolves the reference date for one request. Tests and reproducible
// views pass ?today=YYYY-MM-DD; everything else gets the wall clock, read
// exactly once here.
func (h *Handler) today(c *gin.Context) time.Time {
	if v := c.Query("today"); v != "" {
		if t, ok := engine.ParseDate(v); ok {
			return t
		}
	}
	return engine.Midnight(time.Now())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// loadLookups fetches the four catalogs and indexes them for the grouper.
func (h *Handler) loadLookups() (engine.Lookups, error) {
	employees, err := h.store.ListEmployees()
	if err != nil {
		return engine.Lookups{}, err
	}
	departments, err := h.store.ListDepartments()
	if err != nil {
		return engine.Lookups{}, err
	}
	sections, err := h.store.ListSections()
	if err != nil {
		return engine.Lookups{}, err
	}
	operations, err := h.store.ListOperations()
	if err != nil {
		return engine.Lookups{}, err
	}
	return engine.BuildLookups(employees, departments, sections, operations), nil
}

func (h *Handler) loadRecords() ([]model.AllocationRecord, error) {
	return h.store.ListAllocations(store.AllocationQueryOptions{})
}
