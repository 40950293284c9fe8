package service

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// stubBackend implements ports.BackendClient with overridable functions.
// Unset functions panic, which surfaces unexpected calls as test failures.
type stubBackend struct {
	loginFn        func(ctx context.Context, email, password string) (*domain.TokenPair, error)
	refreshFn      func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	registerFn     func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	currentUserFn  func(ctx context.Context, accessToken string) (*domain.User, error)
	listFeedbackFn func(ctx context.Context, accessToken string) ([]domain.Feedback, error)
	createFn       func(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error)
	updateFn       func(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error)
	deleteFn       func(ctx context.Context, accessToken, id string) error
	listRolesFn    func(ctx context.Context) ([]domain.Role, error)
}

func (s *stubBackend) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubBackend) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubBackend) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubBackend) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	return s.currentUserFn(ctx, accessToken)
}

func (s *stubBackend) ListFeedback(ctx context.Context, accessToken string) ([]domain.Feedback, error) {
	return s.listFeedbackFn(ctx, accessToken)
}

func (s *stubBackend) CreateFeedback(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	return s.createFn(ctx, accessToken, input)
}

func (s *stubBackend) UpdateFeedbackStatus(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error) {
	return s.updateFn(ctx, accessToken, id, status)
}

func (s *stubBackend) DeleteFeedback(ctx context.Context, accessToken, id string) error {
	return s.deleteFn(ctx, accessToken, id)
}

func (s *stubBackend) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.listRolesFn(ctx)
}
