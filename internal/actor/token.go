package actor

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coffeehouse/e2e/internal/models"
)

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RoleClaim extracts the role claim from a session token without
// verifying the signature. Scenarios use it to assert that a token
// issued after escalation carries the final role.
func RoleClaim(token string) (models.Role, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}
	if claims.Role == "" {
		return "", fmt.Errorf("token carries no role claim")
	}
	return models.ParseRole(claims.Role)
}
