package auth

import "github.com/golang-jwt/jwt/v5"

// AdminTokenClaims is the payload carried by the backend's admin login token.
type AdminTokenClaims struct {
	DisplayName string `json:"displayName,omitempty"`
	IsAdmin     bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}
