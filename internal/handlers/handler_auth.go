package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	identity   portssvc.IdentitySvcFacade
	tokens     portssvc.TokenSvcFacade
	googleAuth portssvc.GoogleAuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identity portssvc.IdentitySvcFacade, tokens portssvc.TokenSvcFacade, googleAuth portssvc.GoogleAuthSvcFacade) *AuthHandler {
	return &AuthHandler{
		identity:   identity,
		tokens:     tokens,
		googleAuth: googleAuth,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Identity, services.Token, services.GoogleAuth)

	// Rate limit: 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google", h.GoogleLogin)
		auth.GET("/google/url", h.GoogleLoginURL)
		auth.GET("/google/callback", h.GoogleCallback)
	}
}

// Login godoc
// @Summary Log in with an identifier and secret
// @Description Authenticates an admin username or an employee email / firstname.lastname alias and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	principal, err := h.identity.Authenticate(c.Request.Context(), req.Identifier, req.Secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	h.issueToken(c, principal.Subject, principal.Role)
}

// GoogleLogin godoc
// @Summary Log in with a Google ID token
// @Description Validates a Google ID token and returns a JWT for the matching employee account.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID Token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	principal, err := h.googleAuth.AuthenticateIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	h.issueToken(c, principal.Subject, principal.Role)
}

// GoogleLoginURL godoc
// @Summary Get the Google consent URL
// @Description Returns the Google OAuth consent URL together with the CSRF state.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/url [get]
func (h *AuthHandler) GoogleLoginURL(c *gin.Context) {
	state, err := h.googleAuth.GenerateStateString(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":   h.googleAuth.GetLoginURL(c.Request.Context(), state),
		"state": state,
	})
}

// GoogleCallback godoc
// @Summary Google OAuth redirect callback
// @Description Exchanges the authorization code and returns a JWT for the matching employee account.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	principal, err := h.googleAuth.AuthenticateCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	h.issueToken(c, principal.Subject, principal.Role)
}

func (h *AuthHandler) issueToken(c *gin.Context, subject, role string) {
	token, err := h.tokens.Issue(c.Request.Context(), subject, role)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign JWT token",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
