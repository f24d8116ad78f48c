package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilldojo/internal/model"
)

// ListEmployees returns the operator master.
// GET /api/operators-master
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.store.ListEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// CreateEmployee adds one operator-master row.
// POST /api/operators-master
func (h *Handler) CreateEmployee(c *gin.Context) {
	var emp model.Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if emp.EmployeeCode == "" || emp.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_code and full_name are required"})
		return
	}

	id, err := h.store.InsertEmployee(&emp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	emp.ID = id
	c.JSON(http.StatusCreated, emp)
}

// ListDepartments returns the skill-matrix catalog.
// GET /api/skill-matrix
func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.store.ListDepartments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, departments)
}

// CreateDepartment adds one skill-matrix row.
// POST /api/skill-matrix
func (h *Handler) CreateDepartment(c *gin.Context) {
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if dept.Department == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department is required"})
		return
	}

	id, err := h.store.InsertDepartment(&dept)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	dept.ID = id
	c.JSON(http.StatusCreated, dept)
}

// ListSections returns the section catalog.
// GET /api/sections
func (h *Handler) ListSections(c *gin.Context) {
	sections, err := h.store.ListSections()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// CreateSection adds one section.
// POST /api/sections
func (h *Handler) CreateSection(c *gin.Context) {
	var sec model.Section
	if err := c.ShouldBindJSON(&sec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if sec.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	id, err := h.store.InsertSection(&sec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sec.ID = id
	c.JSON(http.StatusCreated, sec)
}

// ListOperations returns the operation catalog.
// GET /api/operationlist
func (h *Handler) ListOperations(c *gin.Context) {
	operations, err := h.store.ListOperations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, operations)
}

// CreateOperation adds one operation.
// POST /api/operationlist
func (h *Handler) CreateOperation(c *gin.Context) {
	var op model.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if op.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	id, err := h.store.InsertOperation(&op)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	op.ID = id
	c.JSON(http.StatusCreated, op)
}
