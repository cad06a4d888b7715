package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee directory endpoints.
type EmployeeHandler struct {
	employees portssvc.EmployeeSvcFacade
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employees portssvc.EmployeeSvcFacade) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// registerEmployeeRoutes sets up employee directory routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewEmployeeHandler(services.Employee)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.Create)
		employees.GET("", h.List)
		employees.GET("/:employeeID", h.Get)
		employees.GET("/department/:departmentID", h.ByDepartment)
		employees.PUT("/:employeeID", h.Update)
		employees.DELETE("/:employeeID", h.Delete)
	}
}

// Create godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	employee, err := h.employees.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// List godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employees.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// Get godoc
// @Summary Get one employee
// @Tags employees
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	employee, err := h.employees.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// ByDepartment godoc
// @Summary List employees of one department
// @Tags employees
// @Produce json
// @Param departmentID path int true "Department ID"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/department/{departmentID} [get]
func (h *EmployeeHandler) ByDepartment(c *gin.Context) {
	departmentID, ok := pathID(c, "departmentID")
	if !ok {
		return
	}

	employees, err := h.employees.ListEmployeesByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// Update godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	employee, err := h.employees.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Delete godoc
// @Summary Delete an employee and its owned records
// @Tags employees
// @Param employeeID path int true "Employee ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	if err := h.employees.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
