package dto

// LoginRequest carries the submitted login identifier and secret. The
// identifier's shape decides which account source is consulted: anything
// containing '@' is an employee email, everything else an admin username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token for employee sign-in.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
