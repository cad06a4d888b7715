package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles department endpoints.
type DepartmentHandler struct {
	departments portssvc.DepartmentSvcFacade
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departments portssvc.DepartmentSvcFacade) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// registerDepartmentRoutes sets up department routes.
func registerDepartmentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewDepartmentHandler(services.Department)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.Create)
		departments.GET("", h.List)
		departments.GET("/:departmentID", h.Get)
		departments.PUT("/:departmentID", h.Update)
		departments.DELETE("/:departmentID", h.Delete)
	}
}

// Create godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	department, err := h.departments.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// List godoc
// @Summary List all departments
// @Tags departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departments.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentListResponse(departments))
}

// Get godoc
// @Summary Get one department
// @Tags departments
// @Produce json
// @Param departmentID path int true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{departmentID} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	departmentID, ok := pathID(c, "departmentID")
	if !ok {
		return
	}

	department, err := h.departments.GetDepartmentByID(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// Update godoc
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param departmentID path int true "Department ID"
// @Param department body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{departmentID} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	departmentID, ok := pathID(c, "departmentID")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	department, err := h.departments.UpdateDepartment(c.Request.Context(), departmentID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// Delete godoc
// @Summary Delete an empty department
// @Tags departments
// @Param departmentID path int true "Department ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{departmentID} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	departmentID, ok := pathID(c, "departmentID")
	if !ok {
		return
	}

	if err := h.departments.DeleteDepartment(c.Request.Context(), departmentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
