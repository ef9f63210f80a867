package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies session tokens. Override via JWT_SECRET
// in any real deployment.
var jwtSecretKey = []byte(Getenv("JWT_SECRET", "clubin-party-vibes-secret"))

// SessionTokenTTL is how long a session token stays valid.
const SessionTokenTTL = 24 * time.Hour

// Subject roles carried in token claims. Authorization decisions are made
// from the role claim at each route group, never from ad-hoc flags.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
)

// Claims defines the session token claims structure.
type Claims struct {
	SubjectID int64  `json:"subject_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	// ClubID is set for owner tokens only and identifies the owned club.
	ClubID int64 `json:"club_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token for a user or owner.
// clubID is 0 for customer tokens.
func GenerateSessionToken(subjectID int64, email, role string, clubID int64) (string, error) {
	expirationTime := time.Now().Add(SessionTokenTTL)
	claims := &Claims{
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
		ClubID:    clubID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "clubin-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
