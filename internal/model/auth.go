package model

// LoginRequest is the payload for student authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse is returned after successful login. Any response missing
// the token field is treated as a failed login.
type LoginResponse struct {
	Token string `json:"token"`
}
