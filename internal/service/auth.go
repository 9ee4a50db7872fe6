package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/bakehouse/bakehouse-go/internal/config"
	"github.com/bakehouse/bakehouse-go/internal/crypto"
	"github.com/bakehouse/bakehouse-go/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single static admin identity configured at
// startup and issues session tokens. There is no user store.
type AuthService struct {
	username     string
	password     string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
}

// NewAuthService creates a new AuthService from the process configuration.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtExpiry:    cfg.JWTExpiry,
	}
}

// Login checks the candidate credentials against the configured admin
// identity and returns a signed session token on success. Which field was
// wrong is never revealed.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1

	var passwordOK bool
	if s.passwordHash != "" {
		match, err := crypto.VerifyPassword(req.Password, s.passwordHash)
		if err != nil {
			slog.Warn("configured admin password hash is unusable", "error", err)
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		passwordOK = match
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1
	}

	if !usernameOK || !passwordOK {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}
