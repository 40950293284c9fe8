package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// AuthService covers the session lifecycle: login, token refresh,
// registration, and resolving the user behind an access token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// CurrentUser mirrors BackendClient.CurrentUser: (nil, nil) means the
	// token did not resolve to a user.
	CurrentUser(ctx context.Context, accessToken string) (*domain.User, error)
}
