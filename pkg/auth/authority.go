package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yqlstore/storefront/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// AdminActorID is the identity the backend expects on admin-initiated
// moderation requests.
const AdminActorID = "admin"

// Authority is the capability every comment operation receives: who the
// actor is and whether they act with admin rights. The core never performs
// authentication itself; it only consumes this value.
type Authority struct {
	ActorID     string
	DisplayName string
	IsAdmin     bool
}

// AnonymousAuthority mints a fresh visitor identity for the browsing session.
func AnonymousAuthority() Authority {
	return Authority{
		ActorID: fmt.Sprintf("user_%s", uuid.NewString()),
		IsAdmin: false,
	}
}

// ParseAdminToken validates the admin login token and returns the elevated
// authority it grants.
func ParseAdminToken(cfg config.AdminConfig, tokenString string) (Authority, error) {
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Authority{}, fmt.Errorf("admin jwt secret is required")
	}

	claims := &AdminTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithIssuer(cfg.JWTIssuer),
	)
	if err != nil {
		return Authority{}, fmt.Errorf("parsing admin token: %w", err)
	}
	if !claims.IsAdmin {
		return Authority{}, fmt.Errorf("token does not carry admin authority")
	}

	actorID := strings.TrimSpace(claims.Subject)
	if actorID == "" {
		actorID = AdminActorID
	}

	displayName := strings.TrimSpace(claims.DisplayName)
	if displayName == "" {
		displayName = cfg.DisplayName
	}

	return Authority{
		ActorID:     actorID,
		DisplayName: displayName,
		IsAdmin:     true,
	}, nil
}
