package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrTokenInvalid is returned when the signature or token shape is bad.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned when current time >= the token's expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when an identity claim is missing.
	ErrTokenMalformed = errors.New("token missing identity claims")
)

// Claims represents JWT claims. The subject carries the user's email and
// user_id the generated user id, matching the token contract clients rely on.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens. The signing method is
// pinned server-side and never taken from the token itself.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a token service with the given secret and token lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed access token for the user.
func (s *JWTService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and returns its claims. Failure kinds are for
// internal diagnostics only; the HTTP layer collapses them into a single
// unauthenticated outcome.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" || claims.UserID == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
