package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification audit log.
type NotificationHandler struct {
	notifications portssvc.NotificationSvcFacade
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications portssvc.NotificationSvcFacade) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// registerNotificationRoutes sets up notification-log routes.
func registerNotificationRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewNotificationHandler(services.Notification)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/:notificationID", h.Get)
		notifications.DELETE("/:notificationID", h.Delete)
	}
}

// List godoc
// @Summary List the notification log, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} dto.NotificationResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notifications.ListNotifications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}

// Get godoc
// @Summary Get one notification log entry
// @Tags notifications
// @Produce json
// @Param notificationID path int true "Notification ID"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notificationID} [get]
func (h *NotificationHandler) Get(c *gin.Context) {
	notificationID, ok := pathID(c, "notificationID")
	if !ok {
		return
	}

	notification, err := h.notifications.GetNotificationByID(c.Request.Context(), notificationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// Delete godoc
// @Summary Delete a notification log entry
// @Tags notifications
// @Param notificationID path int true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notificationID} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	notificationID, ok := pathID(c, "notificationID")
	if !ok {
		return
	}

	if err := h.notifications.DeleteNotification(c.Request.Context(), notificationID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
