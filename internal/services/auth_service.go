package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuadrantes/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for Users table data access
type UserRepository interface {
	// Method GetByUsername retrieves a user by exact username match.
	//
	// If user with such username does not exist, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer is the interface that wraps access token generation
type TokenIssuer interface {
	// Method GenerateAccessToken creates a signed access token identifying the user, its role and quadrant.
	GenerateAccessToken(user *models.User) (string, error)
}

type authService struct {
	repo   UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

// NewAuthService creates a new auth service.
// A nil tokens issuer disables token issuing; Login then returns no token.
func NewAuthService(repo UserRepository, tokens TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks the credentials and returns the user's role and quadrant.
//
// Unknown usernames and wrong passwords both yield models.ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", req.Username))
		return nil, models.ErrInvalidCredentials
	}

	resp := &models.LoginResponse{
		Status:   "ok",
		Email:    user.Username,
		Role:     user.Role,
		Quadrant: user.Quadrant,
	}

	if s.tokens != nil {
		token, err := s.tokens.GenerateAccessToken(user)
		if err != nil {
			s.logger.Error("failed to generate access token", zap.Error(err), zap.Int("user_id", user.ID))
			return nil, fmt.Errorf("failed to generate access token: %w", err)
		}
		resp.Token = token
	}

	return resp, nil
}
