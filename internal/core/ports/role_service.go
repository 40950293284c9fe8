package ports

import (
	"context"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// RoleService lists the registration role choices. Failures are non-fatal:
// an empty list just renders a registration form without role options.
type RoleService interface {
	List(ctx context.Context) []domain.Role
}

// RoleCache is the optional read-through cache in front of the backend's
// role listing. Get returns ok=false on miss or on any cache failure.
type RoleCache interface {
	Get(ctx context.Context) (roles []domain.Role, ok bool)
	Set(ctx context.Context, roles []domain.Role) error
}
