package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/platform/config"
	"github.com/bs23/ems_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleAuthService signs employees in through Google. Only the employee arm
// of the identity resolver is consulted: the verified Google email is an
// '@'-shaped identifier by construction.
type googleAuthService struct {
	cfg          *config.Config
	identity     portssvc.IdentityResolverSvc
	oauth2Config *oauth2.Config
}

// googleUserInfo is the subset of the userinfo endpoint payload we consume.
type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

// NewGoogleAuthService creates a new Google sign-in service.
func NewGoogleAuthService(cfg *config.Config, identity portssvc.IdentityResolverSvc) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg:      cfg,
		identity: identity,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

// GenerateStateString creates a secure random CSRF token for the OAuth flow.
func (s *googleAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetLoginURL returns the URL to redirect the user to for Google login.
func (s *googleAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// AuthenticateCode exchanges an authorization code and resolves the verified
// email to an employee principal.
func (s *googleAuthService) AuthenticateCode(ctx context.Context, code string) (*domain.Principal, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	if !info.VerifiedEmail {
		return nil, apperrors.ErrUnauthorized
	}

	return s.principalForEmail(ctx, info.Email)
}

// AuthenticateIDToken validates a Google ID token and resolves the verified
// email to an employee principal.
func (s *googleAuthService) AuthenticateIDToken(ctx context.Context, idTokenString string) (*domain.Principal, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); !verified || email == "" {
		return nil, apperrors.ErrUnauthorized
	}

	return s.principalForEmail(ctx, email)
}

func (s *googleAuthService) principalForEmail(ctx context.Context, email string) (*domain.Principal, error) {
	employee, err := s.identity.ResolveEmployee(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	role := strings.TrimSpace(employee.Role)
	if role == "" {
		role = domain.DefaultEmployeeRole
	}
	return &domain.Principal{Subject: employee.Email, Role: role}, nil
}
