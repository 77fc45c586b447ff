// internal/services/auth_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/livrestore/storefront/internal/config"
	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
	"github.com/livrestore/storefront/internal/utils"
)

// Demo identity synthesized by the mock login. Login accepts any credentials
// by design: this is a storefront demo with no credential store, and only
// the submitted email is carried over.
var (
	demoUserID  = uuid.MustParse("2f1c9a84-6c1d-4c8e-9e8e-8f2f4b3a7d01")
	demoName    = "Usuário ITZ"
	demoAddress = "Centro, Imperatriz - MA"
	demoPhone   = "(99) 99123-4567"
)

type AuthService struct {
	cfg *config.Config
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Register always succeeds: the submitted fields become a fresh identity
// which replaces whatever user the session held. Lands on home.
func (s *AuthService) Register(sess *state.Session, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sess.SetUser(user)
	return s.tokensFor(sess, &user)
}

// Login is a mock: any credentials are accepted and the fixed demo profile
// is activated, reusing only the submitted email. Lands on home.
func (s *AuthService) Login(sess *state.Session, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := models.User{
		ID:        demoUserID,
		Name:      demoName,
		Email:     req.Email,
		Address:   demoAddress,
		Phone:     demoPhone,
		CreatedAt: time.Now(),
	}

	sess.SetUser(user)
	return s.tokensFor(sess, &user)
}

// Logout clears the active identity and lands on home.
func (s *AuthService) Logout(sess *state.Session) {
	sess.ClearUser()
}

func (s *AuthService) tokensFor(sess *state.Session, user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Name, user.Email, sess.ID(), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
