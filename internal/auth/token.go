package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ktsk/conduit/domain"
)

// DefaultSessionTTL is the fixed session length for issued tokens.
const DefaultSessionTTL = 2 * time.Hour

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited session tokens.
// The signing key is process-wide configuration handed in at startup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token binding userID with expiry now+ttl.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrInternalServerError
	}
	return signed, nil
}

// Verify checks signature and expiry. Malformed tokens, bad signatures and
// expired claims all collapse to ErrUnauthorized.
func (s *TokenService) Verify(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}
