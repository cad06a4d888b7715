package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles attendance endpoints.
type AttendanceHandler struct {
	attendance portssvc.AttendanceSvcFacade
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendance portssvc.AttendanceSvcFacade) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// registerAttendanceRoutes sets up attendance routes. Administrative
// operations are gated to ADMIN/HR; the self-service operations admit any
// authenticated principal with a recognized role.
func registerAttendanceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewAttendanceHandler(services.Attendance)

	attendance := rg.Group("/attendance")

	self := attendance.Group("", middleware.RequireRoles("ADMIN", "HR", "EMPLOYEE", "USER"))
	{
		self.POST("/mark", h.Mark)
		self.GET("/my-attendance", h.MyAttendance)
	}

	admin := attendance.Group("", middleware.RequireRoles("ADMIN", "HR"))
	{
		admin.POST("/checkin/:employeeID", h.CheckIn)
		admin.POST("/checkout/:attendanceID", h.CheckOut)
		admin.GET("/report/:employeeID", h.Report)
		admin.GET("/employee/:identifier", h.ByIdentifier)
		admin.GET("/:employeeID", h.ByEmployee)
		admin.GET("", h.ListAll)
	}
}

// Mark godoc
// @Summary Mark attendance for the authenticated employee
// @Description CHECK_IN opens a new record; CHECK_OUT completes the latest record of the current day.
// @Tags attendance
// @Accept json
// @Produce json
// @Param mark body dto.MarkAttendanceRequest true "Mark type"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/mark [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	record, err := h.attendance.Mark(c.Request.Context(), req.Type, principal.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// MyAttendance godoc
// @Summary List the authenticated employee's attendance records
// @Tags attendance
// @Produce json
// @Success 200 {array} dto.AttendanceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/my-attendance [get]
func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	records, err := h.attendance.ListByIdentifier(c.Request.Context(), principal.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceListResponse(records))
}

// CheckIn godoc
// @Summary Open an attendance record for an employee
// @Tags attendance
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/checkin/{employeeID} [post]
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	record, err := h.attendance.CheckIn(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// CheckOut godoc
// @Summary Close an attendance record by ID
// @Tags attendance
// @Produce json
// @Param attendanceID path int true "Attendance ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/checkout/{attendanceID} [post]
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	attendanceID, ok := pathID(c, "attendanceID")
	if !ok {
		return
	}

	record, err := h.attendance.CheckOut(c.Request.Context(), attendanceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// Report godoc
// @Summary Attendance report for one employee
// @Tags attendance
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} domain.AttendanceReport
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/report/{employeeID} [get]
func (h *AttendanceHandler) Report(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	report, err := h.attendance.Report(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ByIdentifier godoc
// @Summary List attendance records by login identifier
// @Description Resolves an employee email or firstname.lastname alias, then lists their records.
// @Tags attendance
// @Produce json
// @Param identifier path string true "Employee identifier"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/employee/{identifier} [get]
func (h *AttendanceHandler) ByIdentifier(c *gin.Context) {
	records, err := h.attendance.ListByIdentifier(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceListResponse(records))
}

// ByEmployee godoc
// @Summary List attendance records by employee ID
// @Tags attendance
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{employeeID} [get]
func (h *AttendanceHandler) ByEmployee(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}

	records, err := h.attendance.ListByEmployeeID(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceListResponse(records))
}

// ListAll godoc
// @Summary List all attendance records
// @Tags attendance
// @Produce json
// @Success 200 {array} dto.AttendanceResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) ListAll(c *gin.Context) {
	records, err := h.attendance.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceListResponse(records))
}
