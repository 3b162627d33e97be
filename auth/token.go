package auth

import (
	"fmt"
	"time"

	"notification-hub/domain"
	"notification-hub/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

const issuer = "notification-hub"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c CustomClaims) Identity() Identity {
	return Identity{
		UserID: domain.UserID(c.UserID),
		Roles: lo.Map(c.Roles, func(r string, _ int) domain.Role {
			return domain.Role(r).Normalize()
		}),
	}
}

// Identity is the verified user behind a connection.
type Identity struct {
	UserID domain.UserID
	Roles  []domain.Role
}

func (i Identity) HasRole(role domain.Role) bool {
	return lo.Contains(i.Roles, role.Normalize())
}

// TokenManager signs and verifies HS256 tokens with a shared secret.
type TokenManager struct {
	secret   []byte
	duration time.Duration
}

func NewTokenManager(secret string, duration time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), duration: duration}
}

// GenerateToken creates a signed JWT for a specific user.
func (m *TokenManager) GenerateToken(userID domain.UserID, roles []domain.Role) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: string(userID),
		Roles:  lo.Map(roles, func(r domain.Role, _ int) string { return string(r.Normalize()) }),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   string(userID),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return token, nil
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (m *TokenManager) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		if claims.UserID == "" {
			return nil, fmt.Errorf("token has no user_id: %w", jwt.ErrTokenInvalidClaims)
		}
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
