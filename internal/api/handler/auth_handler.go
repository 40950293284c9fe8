package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/session"
)

// AuthHandler serves the login and register pages and their form actions.
type AuthHandler struct {
	auth  ports.AuthService
	roles ports.RoleService
	codec *session.Codec
}

func NewAuthHandler(auth ports.AuthService, roles ports.RoleService, codec *session.Codec) *AuthHandler {
	return &AuthHandler{auth: auth, roles: roles, codec: codec}
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Email     string `form:"email"      validate:"required,email"`
	Password  string `form:"password"   validate:"required"`
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name"  validate:"required"`
	RoleID    string `form:"role"`
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login handles POST /login: validates the form, exchanges credentials for
// a token pair, and sets both auth cookies before redirecting to the board.
func (h *AuthHandler) Login(c echo.Context) error {
	form := loginForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}
	if form.Email == "" || form.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}
	if err := c.Validate(form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	pair, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": remoteMessage(err, "An unexpected error occurred")})
	}

	c.SetCookie(h.codec.IssueAccess(pair.AccessToken))
	c.SetCookie(h.codec.IssueRefresh(pair.RefreshToken))
	return c.Redirect(http.StatusFound, "/")
}

// RegisterPage handles GET /register. The role list degrades to empty when
// the backend is unavailable.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	roles := h.roles.List(c.Request().Context())
	return c.Render(http.StatusOK, "register.html", echo.Map{"Roles": roles})
}

// Register handles POST /register: creates the user in the backend (which
// forces status "active") and redirects to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	form := registerForm{
		Email:     strings.TrimSpace(c.FormValue("email")),
		Password:  c.FormValue("password"),
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		RoleID:    c.FormValue("role"),
	}
	if form.Email == "" || form.Password == "" || form.FirstName == "" || form.LastName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields are required"})
	}
	if err := c.Validate(form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	_, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		RoleID:    form.RoleID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": remoteMessage(err, "Registration failed")})
	}

	return c.Redirect(http.StatusFound, "/login")
}

// remoteMessage surfaces the backend's first error message when one exists,
// falling back to the given generic string.
func remoteMessage(err error, fallback string) string {
	var re *domain.RemoteError
	if errors.As(err, &re) && re.First() != "" {
		return re.First()
	}
	return fallback
}
