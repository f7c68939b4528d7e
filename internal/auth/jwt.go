package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/util"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// Claims defines the JWT claims structure carried by a session token.
type Claims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies session tokens. Tokens are stateless:
// the server keeps no session record and cannot revoke an issued token
// before it expires. Logout only clears the client-held cookie.
type TokenManager struct {
	secret []byte
	clock  util.Clock
	parser *jwt.Parser
}

// NewTokenManager builds a TokenManager around a signing secret. The clock
// controls both the issue/expiry timestamps and the expiry check during
// verification.
func NewTokenManager(secret string, clock util.Clock) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		clock:  clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
		),
	}
}

// Issue creates a signed token for a user, valid for TokenTTL.
func (m *TokenManager) Issue(user models.User) (string, error) {
	now := m.clock.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string. The signature is checked
// before any claim, so a tampered token never reaches the expiry check.
// Callers should treat every failure the same way; the error detail is for
// logs only.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := m.parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
