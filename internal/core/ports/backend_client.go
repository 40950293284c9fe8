package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// RegisterInput carries the fields of a registration form.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	RoleID    string
}

// CreateFeedbackInput carries the fields of the create-feedback form.
type CreateFeedbackInput struct {
	Title       string
	Description string
	Category    domain.Category
}

// BackendClient is the typed client for the external identity+content
// service that owns users, roles and feedback records. The client is
// stateless: authenticated operations take the access token explicitly so
// that no token ever leaks between concurrent requests.
type BackendClient interface {
	// Login exchanges credentials for a token pair. Returns
	// domain.ErrInvalidCredentials when the backend rejects them.
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	// Refresh rotates a token pair. Returns domain.ErrInvalidToken when the
	// refresh token is rejected or expired.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// Register creates a user. The backend forces status "active".
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// CurrentUser resolves the user behind an access token. Returns
	// (nil, nil) when the token cannot be resolved, so callers can treat it
	// as "not authenticated" rather than a hard failure.
	CurrentUser(ctx context.Context, accessToken string) (*domain.User, error)

	ListFeedback(ctx context.Context, accessToken string) ([]domain.Feedback, error)
	// CreateFeedback stores a new item. The backend forces status "draft"
	// regardless of client input.
	CreateFeedback(ctx context.Context, accessToken string, input CreateFeedbackInput) (*domain.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error)
	DeleteFeedback(ctx context.Context, accessToken, id string) error

	// ListRoles returns the roles offered at registration.
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
