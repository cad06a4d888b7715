package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes the read-only dashboard aggregations.
type AnalyticsHandler struct {
	analytics portssvc.AnalyticsSvcFacade
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics portssvc.AnalyticsSvcFacade) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// registerAnalyticsRoutes sets up analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewAnalyticsHandler(services.Analytics)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/departments", h.DepartmentCounts)
		analytics.GET("/attendance-trends", h.AttendanceTrends)
		analytics.GET("/payroll", h.PayrollSummary)
		analytics.GET("/dashboard", h.Dashboard)
	}
}

// DepartmentCounts godoc
// @Summary Employee headcount per department
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DepartmentEmployeeCount
// @Security BearerAuth
// @Router /analytics/departments [get]
func (h *AnalyticsHandler) DepartmentCounts(c *gin.Context) {
	counts, err := h.analytics.DepartmentCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// AttendanceTrends godoc
// @Summary Check-in counts per calendar day
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.AttendanceTrend
// @Security BearerAuth
// @Router /analytics/attendance-trends [get]
func (h *AnalyticsHandler) AttendanceTrends(c *gin.Context) {
	trends, err := h.analytics.AttendanceTrends(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// PayrollSummary godoc
// @Summary Total and average salary per department
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.PayrollSummary
// @Security BearerAuth
// @Router /analytics/payroll [get]
func (h *AnalyticsHandler) PayrollSummary(c *gin.Context) {
	summary, err := h.analytics.PayrollSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Dashboard godoc
// @Summary Combined admin dashboard aggregate
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
