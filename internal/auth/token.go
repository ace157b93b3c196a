package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ticketeiro/internal/config"
	"ticketeiro/internal/models"
)

// Session is the authenticated principal attached to a request.
type Session struct {
	UserID string
	Role   models.Role
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a session JWT for the user. Role travels in
// the token so handlers can gate producer-only routes without a
// database round trip.
func IssueSessionToken(cfg config.AuthConfig, user *models.User) (string, error) {
	if cfg.JWTSecret == "" {
		return "", errors.New("auth: JWT secret not configured")
	}

	now := time.Now()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseSessionToken verifies the signature and expiry and returns the
// session carried by the token.
func ParseSessionToken(cfg config.AuthConfig, tokenString string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}

	return &Session{UserID: claims.Subject, Role: models.Role(claims.Role)}, nil
}

// RedirectPath is where a freshly signed-in user lands, by role.
func RedirectPath(role models.Role) string {
	switch role {
	case models.RoleProducer:
		return "/dashboard/PRODUCER"
	case models.RoleAdmin:
		return "/dashboard/ADMIN"
	default:
		return "/dashboard/USER"
	}
}
