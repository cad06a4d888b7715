package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LeaveHandler handles leave workflow endpoints.
type LeaveHandler struct {
	leave portssvc.LeaveSvcFacade
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(leave portssvc.LeaveSvcFacade) *LeaveHandler {
	return &LeaveHandler{leave: leave}
}

// registerLeaveRoutes sets up leave routes.
func registerLeaveRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewLeaveHandler(services.Leave)

	leaves := rg.Group("/leaves")

	self := leaves.Group("", middleware.RequireRoles("ADMIN", "HR", "EMPLOYEE", "USER"))
	{
		self.POST("/request", h.Request)
		self.GET("/my-requests", h.MyRequests)
	}

	admin := leaves.Group("", middleware.RequireRoles("ADMIN", "HR"))
	{
		admin.PUT("/approve/:leaveID", h.Approve)
		admin.PUT("/reject/:leaveID", h.Reject)
		admin.GET("/pending", h.ListPending)
		admin.POST("/employee/:employeeID", h.RequestForEmployee)
		admin.GET("/employee/:employeeID", h.ByEmployee)
		admin.GET("", h.ListAll)
	}
}

// Request godoc
// @Summary Request leave for the authenticated employee
// @Description Creates a PENDING request unless it overlaps an existing PENDING or APPROVED one.
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave request"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/request [post]
func (h *LeaveHandler) Request(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	leave, err := h.leave.Request(c.Request.Context(), principal.Subject, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveResponse(leave))
}

// MyRequests godoc
// @Summary List the authenticated employee's leave requests
// @Tags leaves
// @Produce json
// @Success 200 {array} dto.LeaveResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/my-requests [get]
func (h *LeaveHandler) MyRequests(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	leaves, err := h.leave.ListByIdentifier(c.Request.Context(), principal.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveListResponse(leaves))
}

// RequestForEmployee godoc
// @Summary File a leave request on behalf of an employee
// @Description Creates a PENDING request for the given employee unless it overlaps an existing PENDING or APPROVED one.
// @Tags leaves
// @Accept json
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Param leave body dto.CreateLeaveRequest true "Leave request"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/employee/{employeeID} [post]
func (h *LeaveHandler) RequestForEmployee(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	leave, err := h.leave.RequestForEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveResponse(leave))
}

// Approve godoc
// @Summary Approve a pending leave request
// @Tags leaves
// @Produce json
// @Param leaveID path int true "Leave request ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/approve/{leaveID} [put]
func (h *LeaveHandler) Approve(c *gin.Context) {
	leaveID, ok := pathID(c, "leaveID")
	if !ok {
		return
	}

	leave, err := h.leave.Approve(c.Request.Context(), leaveID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveResponse(leave))
}

// Reject godoc
// @Summary Reject a pending leave request
// @Tags leaves
// @Produce json
// @Param leaveID path int true "Leave request ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/reject/{leaveID} [put]
func (h *LeaveHandler) Reject(c *gin.Context) {
	leaveID, ok := pathID(c, "leaveID")
	if !ok {
		return
	}

	leave, err := h.leave.Reject(c.Request.Context(), leaveID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveResponse(leave))
}

// ListPending godoc
// @Summary List all pending leave requests
// @Tags leaves
// @Produce json
// @Success 200 {array} dto.LeaveResponse
// @Security BearerAuth
// @Router /leaves/pending [get]
func (h *LeaveHandler) ListPending(c *gin.Context) {
	leaves, err := h.leave.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveListResponse(leaves))
}

// ByEmployee godoc
// @Summary List leave requests for one employee
// @Tags leaves
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {array} dto.LeaveResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/employee/{employeeID} [get]
func (h *LeaveHandler) ByEmployee(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	leaves, err := h.leave.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveListResponse(leaves))
}

// ListAll godoc
// @Summary List all leave requests
// @Tags leaves
// @Produce json
// @Success 200 {array} dto.LeaveResponse
// @Security BearerAuth
// @Router /leaves [get]
func (h *LeaveHandler) ListAll(c *gin.Context) {
	leaves, err := h.leave.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveListResponse(leaves))
}
