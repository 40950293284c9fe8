package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

// ctxSession extracts the session injected by the Session gate and performs
// a fast-fail check before any service call: a nil user means the gate did
// not run, which is a routing bug rather than a user error.
func ctxSession(c echo.Context) (user *domain.User, role domain.RoleKind, token string, err error) {
	user, _ = c.Get(middleware.ContextUser).(*domain.User)
	if user == nil {
		return nil, "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	role, _ = c.Get(middleware.ContextRole).(domain.RoleKind)
	token, _ = c.Get(middleware.ContextToken).(string)
	return user, role, token, nil
}
