package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/api/metrics"
	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// AuthService implements the session lifecycle over the backend client.
// It holds no per-session state: tokens live only in the signed cookies.
type AuthService struct {
	backend ports.BackendClient
	log     zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(backend ports.BackendClient, log zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.backend.Login(ctx, email, password)
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return nil, err
	}

	s.log.Info().Str("email", email).Msg("login succeeded")
	return pair, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}

	pair, err := s.backend.Refresh(ctx, refreshToken)
	metrics.TokenRefreshesTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.log.Debug().Err(err).Msg("token refresh failed")
		return nil, err
	}
	return pair, nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.backend.Register(ctx, input)
	metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Str("email", input.Email).Msg("registration failed")
		return nil, err
	}

	s.log.Info().Str("email", input.Email).Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	if accessToken == "" {
		return nil, nil
	}
	return s.backend.CurrentUser(ctx, accessToken)
}
