package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// FeedbackService covers the feedback board workflow. List degrades to nil
// on any remote failure so the board renders empty rather than erroring.
type FeedbackService interface {
	List(ctx context.Context, accessToken string) []domain.Feedback
	Create(ctx context.Context, accessToken string, input CreateFeedbackInput) (*domain.Feedback, error)
	UpdateStatus(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error)
	Delete(ctx context.Context, accessToken, id string) error
}
