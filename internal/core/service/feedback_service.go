package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/api/metrics"
	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// FeedbackService implements the feedback board workflow over the backend
// client. Reads degrade to an empty board on failure; writes surface their
// errors to the caller.
type FeedbackService struct {
	backend ports.BackendClient
	log     zerolog.Logger
}

var _ ports.FeedbackService = (*FeedbackService)(nil)

func NewFeedbackService(backend ports.BackendClient, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{backend: backend, log: log}
}

// List returns all feedback items, or nil when the backend is unavailable.
func (s *FeedbackService) List(ctx context.Context, accessToken string) []domain.Feedback {
	items, err := s.backend.ListFeedback(ctx, accessToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("listing feedback failed")
		return nil
	}
	return items
}

// Create stores a new feedback item. The backend forces status draft.
func (s *FeedbackService) Create(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	item, err := s.backend.CreateFeedback(ctx, accessToken, input)
	metrics.FeedbackOpsTotal.WithLabelValues("create", metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Str("title", input.Title).Msg("creating feedback failed")
		return nil, err
	}

	s.log.Info().Str("feedback_id", item.ID).Str("category", string(item.Category)).Msg("feedback created")
	return item, nil
}

// UpdateStatus moves one item to a new moderation status.
func (s *FeedbackService) UpdateStatus(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	item, err := s.backend.UpdateFeedbackStatus(ctx, accessToken, id, status)
	metrics.FeedbackOpsTotal.WithLabelValues("update_status", metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Str("feedback_id", id).Msg("updating feedback status failed")
		return nil, err
	}

	s.log.Info().Str("feedback_id", id).Str("status", string(status)).Msg("feedback status updated")
	return item, nil
}

// Delete removes one item.
func (s *FeedbackService) Delete(ctx context.Context, accessToken, id string) error {
	err := s.backend.DeleteFeedback(ctx, accessToken, id)
	metrics.FeedbackOpsTotal.WithLabelValues("delete", metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Str("feedback_id", id).Msg("deleting feedback failed")
		return err
	}

	s.log.Info().Str("feedback_id", id).Msg("feedback deleted")
	return nil
}
