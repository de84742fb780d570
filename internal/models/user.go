package models

// User is the backend's user representation as returned by the REST and
// GraphQL APIs.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// WithRole returns a copy of the user carrying the given role. The
// builder uses this after a direct-DB escalation so the in-memory value
// matches the database without mutating the original response.
func (u User) WithRole(role Role) User {
	u.Role = role
	return u
}

// UserRequest is the payload for creating or updating a user through
// the users API (admin surface, distinct from self-registration).
type UserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role,omitempty"`
}

func NewUserRequest(username, email, password string, role Role) (UserRequest, error) {
	req := UserRequest{Username: username, Email: email, Password: password, Role: role}
	if err := Validate(req); err != nil {
		return UserRequest{}, err
	}
	return req, nil
}
