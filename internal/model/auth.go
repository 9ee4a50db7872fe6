package model

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token back to the dashboard. Logout is
// purely client-side (the token is discarded, not revoked).
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
