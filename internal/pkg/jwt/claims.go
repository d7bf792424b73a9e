package jwt

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/auth"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/user"
)

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID     string
	Email      string
	Role       user.Role
	EmployeeID *string
}

// ClaimsFromContext reads the verified token claims placed in the request
// context by the jwtauth verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, auth.ErrInvalidToken
	}

	userID, ok := raw["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, auth.ErrMissingClaim
	}

	c := Claims{UserID: userID}
	if email, ok := raw["email"].(string); ok {
		c.Email = email
	}
	if role, ok := raw["role"].(string); ok {
		c.Role = user.Role(role)
	}
	if employeeID, ok := raw["employee_id"].(string); ok && employeeID != "" {
		c.EmployeeID = &employeeID
	}

	return c, nil
}
