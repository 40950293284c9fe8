package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

// RoleService lists registration role choices with an optional cache-aside
// Redis cache in front of the backend. Every failure path degrades: cache
// errors fall through to the backend, backend errors yield an empty list.
type RoleService struct {
	backend ports.BackendClient
	cache   ports.RoleCache
	log     zerolog.Logger
}

var _ ports.RoleService = (*RoleService)(nil)

// NewRoleService creates a RoleService. cache may be nil to run uncached.
func NewRoleService(backend ports.BackendClient, cache ports.RoleCache, log zerolog.Logger) *RoleService {
	return &RoleService{backend: backend, cache: cache, log: log}
}

func (s *RoleService) List(ctx context.Context) []domain.Role {
	if s.cache != nil {
		if roles, ok := s.cache.Get(ctx); ok {
			return roles
		}
	}

	roles, err := s.backend.ListRoles(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("listing roles failed")
		return nil
	}

	if s.cache != nil && len(roles) > 0 {
		if err := s.cache.Set(ctx, roles); err != nil {
			s.log.Debug().Err(err).Msg("caching roles failed")
		}
	}
	return roles
}
