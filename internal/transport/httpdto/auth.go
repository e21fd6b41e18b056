package httpdto

// RegisterRequest is used for POST /auth/register
type RegisterRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Image       string `json:"image,omitempty"` // optional
}

// LoginRequest is used for POST /auth/login
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthUserDTO is the user summary returned on login.
type AuthUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}

// LogoutResponse is returned by POST /auth/logout. Logout is stateless; the
// client is told to discard its token.
type LogoutResponse struct {
	Message      string `json:"message"`
	Instructions string `json:"instructions"`
}
