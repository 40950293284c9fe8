package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/session"
)

// Context keys set by the session gate.
const (
	ContextUser  = "user"
	ContextRole  = "role"
	ContextToken = "token"
)

// Config carries the session gate's collaborators.
type Config struct {
	Auth         ports.AuthService
	Codec        *session.Codec
	PublicRoleID string
	Log          zerolog.Logger
}

// ResolveRole maps a backend role identifier to its capability level. Any
// identifier other than the configured public role counts as administrator.
func ResolveRole(publicRoleID, roleID string) domain.RoleKind {
	if roleID == publicRoleID {
		return domain.RolePublic
	}
	return domain.RoleAdmin
}

// Session gates protected routes. It parses the access cookie, resolves the
// current user, and injects user, role kind and token into the context.
// When the access token does not resolve but a valid refresh cookie is
// present, the gate rotates the token pair transparently and re-issues both
// cookies; only when that also fails does it redirect to /login.
func Session(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if token := cfg.Codec.Parse(c.Request(), session.AccessCookie); token != "" {
				user, err := cfg.Auth.CurrentUser(ctx, token)
				if err != nil {
					cfg.Log.Warn().Err(err).Msg("resolving current user failed")
				}
				if user != nil {
					inject(c, user, token, cfg.PublicRoleID)
					return next(c)
				}
			}

			if refresh := cfg.Codec.Parse(c.Request(), session.RefreshCookie); refresh != "" {
				if pair, err := cfg.Auth.Refresh(ctx, refresh); err == nil {
					user, err := cfg.Auth.CurrentUser(ctx, pair.AccessToken)
					if err != nil {
						cfg.Log.Warn().Err(err).Msg("resolving refreshed user failed")
					}
					if user != nil {
						c.SetCookie(cfg.Codec.IssueAccess(pair.AccessToken))
						c.SetCookie(cfg.Codec.IssueRefresh(pair.RefreshToken))
						inject(c, user, pair.AccessToken, cfg.PublicRoleID)
						return next(c)
					}
				}
			}

			return c.Redirect(http.StatusFound, "/login")
		}
	}
}

// Anonymous gates the login and register pages: a request that already
// carries a valid access cookie is sent back to the board.
func Anonymous(codec *session.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if codec.Parse(c.Request(), session.AccessCookie) != "" {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

func inject(c echo.Context, user *domain.User, token, publicRoleID string) {
	c.Set(ContextUser, user)
	c.Set(ContextRole, ResolveRole(publicRoleID, user.RoleID))
	c.Set(ContextToken, token)
}
