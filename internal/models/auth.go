package models

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func NewRegisterRequest(username, email, password string) (RegisterRequest, error) {
	req := RegisterRequest{Username: username, Email: email, Password: password}
	if err := Validate(req); err != nil {
		return RegisterRequest{}, err
	}
	return req, nil
}

// AuthRequest is the payload for POST /api/auth/login.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewAuthRequest(username, password string) (AuthRequest, error) {
	req := AuthRequest{Username: username, Password: password}
	if err := Validate(req); err != nil {
		return AuthRequest{}, err
	}
	return req, nil
}

// AuthResponse is the login result. Token is the opaque bearer
// credential applied to all subsequent requests of an actor.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type,omitempty"`
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role,omitempty"`
}
