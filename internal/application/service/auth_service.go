package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/config"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/utils"
)

type account struct {
	role         enum.Role
	passwordHash string
}

// AuthService handles authentication-related operations
type AuthService struct {
	accounts   map[string]account
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service. Passwords from config are
// hashed once here and the plain values are not retained.
func NewAuthService(cfg config.AuthConfig, jwtManager *utils.JWTManager) (*AuthService, error) {
	s := &AuthService{
		accounts:   make(map[string]account, 2),
		jwtManager: jwtManager,
	}

	for _, acc := range []struct {
		username string
		password string
		role     enum.Role
	}{
		{cfg.AdminUsername, cfg.AdminPassword, enum.RoleAdmin},
		{cfg.CashierUsername, cfg.CashierPassword, enum.RoleCashier},
	} {
		if acc.username == "" || acc.password == "" {
			continue
		}
		if _, exists := s.accounts[acc.username]; exists {
			return nil, fmt.Errorf("duplicate operator username %q", acc.username)
		}
		hash, err := utils.HashPassword(acc.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", acc.username, err)
		}
		s.accounts[acc.username] = account{role: acc.role, passwordHash: hash}
	}

	if len(s.accounts) == 0 {
		return nil, fmt.Errorf("no operator accounts configured")
	}
	return s, nil
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Principal   entity.Principal
	AccessToken string
	ExpiresIn   time.Duration
}

// Login authenticates an operator and returns an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	acc, ok := s.accounts[input.Username]
	if !ok || !utils.CheckPasswordHash(input.Password, acc.passwordHash) {
		log.Printf("[auth] failed login for %q", input.Username)
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(input.Username, acc.role.String())
	if err != nil {
		return nil, apperror.NewOperationError("generate access token", err)
	}

	log.Printf("[auth] %s logged in as %s", input.Username, acc.role)
	return &LoginOutput{
		Principal:   entity.Principal{Username: input.Username, Role: acc.role},
		AccessToken: token,
		ExpiresIn:   s.jwtManager.AccessTokenExpiry(),
	}, nil
}

// Authenticate resolves a bearer token to the operator it was issued to
func (s *AuthService) Authenticate(token string) (*entity.Principal, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	// Tokens for accounts removed from config stop working after a restart
	acc, ok := s.accounts[claims.Username]
	if !ok || acc.role.String() != claims.Role {
		return nil, apperror.ErrInvalidToken
	}

	return &entity.Principal{Username: claims.Username, Role: acc.role}, nil
}
