package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// AuthClaims is what the auth middleware stores in the request context
// after validating the Supabase token.
type AuthClaims struct {
	*CustomClaims
	UserID string `json:"id"`
	Name   string `json:"name,omitempty"`
}

// FullName returns the full_name metadata when present, falling back
// to the account email.
func (ac *AuthClaims) FullName() string {
	if v, ok := ac.UserMetadata["full_name"].(string); ok && v != "" {
		return v
	}
	return ac.Email
}
