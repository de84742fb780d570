package models

import (
	"fmt"
	"strings"
)

// Role is a backend user role. The backend stores roles upper-cased;
// ParseRole normalizes before comparison or persistence.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"

	// DefaultRole is the role the backend assigns on registration.
	DefaultRole = RoleCustomer
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleSeller:
		return RoleSeller, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("invalid role: %s", s)
	}
}

func (r Role) String() string {
	return string(r)
}
