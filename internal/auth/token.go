// Package auth issues and validates access tokens
package auth

import (
	"fmt"
	"time"

	"github.com/cuadrantes/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access"

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret            string
	accessTokenExpiry time.Duration
	now               func() time.Time
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, accessExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:            secret,
		accessTokenExpiry: accessExpiry,
		now:               time.Now,
	}
}

// GenerateAccessToken creates an access token carrying the user's id, username, role and quadrant
func (tg *TokenGenerator) GenerateAccessToken(user *models.User) (string, error) {
	var quadrant string
	if user.Quadrant != nil {
		quadrant = *user.Quadrant
	}

	now := tg.now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"quadrant": quadrant,
		"exp":      now.Add(tg.accessTokenExpiry).Unix(),
		"iat":      now.Unix(),
		"type":     tokenTypeAccess,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken validates an access token and returns the caller it identifies
func (tg *TokenGenerator) ValidateAccessToken(tokenString string) (*models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	}, jwt.WithTimeFunc(tg.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != tokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}

	// JWT claims decode numbers as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("user_id not found in token")
	}

	role, ok := claims["role"].(string)
	if !ok || !models.Role(role).Valid() {
		return nil, fmt.Errorf("role not found in token")
	}

	username, _ := claims["username"].(string)
	quadrant, _ := claims["quadrant"].(string)

	return &models.Principal{
		UserID:   int(userID),
		Username: username,
		Role:     models.Role(role),
		Quadrant: quadrant,
	}, nil
}
