package handlers

import (
	"net/http"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles administrative-account endpoints.
type UserHandler struct {
	users portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{users: users}
}

// registerUserRoutes sets up admin-account routes.
func registerUserRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewUserHandler(services.User)

	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:userID", h.Get)
		users.PUT("/:userID", h.Update)
		users.DELETE("/:userID", h.Delete)
	}
}

// Create godoc
// @Summary Provision an admin account
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Admin account"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// List godoc
// @Summary List all admin accounts
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// Get godoc
// @Summary Get one admin account
// @Tags users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Update godoc
// @Summary Update an admin account
// @Tags users
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{userID} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Delete godoc
// @Summary Delete an admin account
// @Tags users
// @Param userID path int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{userID} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
