package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/session"
)

// BoardHandler serves the feedback board and its intent-discriminated
// actions: logout, create_feedback, update_feedback, delete_feedback.
type BoardHandler struct {
	feedback ports.FeedbackService
	codec    *session.Codec
}

func NewBoardHandler(feedback ports.FeedbackService, codec *session.Codec) *BoardHandler {
	return &BoardHandler{feedback: feedback, codec: codec}
}

type boardData struct {
	User      *domain.User
	Role      domain.RoleKind
	Feedbacks []domain.Feedback
}

// Board handles GET /: renders the feedback board for the current user.
func (h *BoardHandler) Board(c echo.Context) error {
	user, role, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "board.html", boardData{
		User:      user,
		Role:      role,
		Feedbacks: h.feedback.List(c.Request().Context(), token),
	})
}

// Action handles POST /: dispatches on the "intent" form field.
func (h *BoardHandler) Action(c echo.Context) error {
	_, _, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	switch c.FormValue("intent") {
	case "logout":
		return h.logout(c)
	case "create_feedback":
		return h.create(c, token)
	case "update_feedback":
		return h.update(c, token)
	case "delete_feedback":
		return h.delete(c, token)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid action"})
	}
}

// logout expires both auth cookies. The refresh cookie must go too, or the
// session gate would transparently log the user straight back in.
func (h *BoardHandler) logout(c echo.Context) error {
	c.SetCookie(h.codec.Expire(session.AccessCookie))
	c.SetCookie(h.codec.Expire(session.RefreshCookie))
	return c.Redirect(http.StatusFound, "/")
}

func (h *BoardHandler) create(c echo.Context, token string) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	if title == "" || description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and Description are required"})
	}

	category := domain.Category(c.FormValue("category"))
	if category == "" {
		category = domain.CategoryOther
	}

	_, err := h.feedback.Create(c.Request().Context(), token, ports.CreateFeedbackInput{
		Title:       title,
		Description: description,
		Category:    category,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to create feedback"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": "Feedback created successfully!"})
}

func (h *BoardHandler) update(c echo.Context, token string) error {
	id := c.FormValue("id")
	status := domain.Status(c.FormValue("status"))

	if _, err := h.feedback.UpdateStatus(c.Request().Context(), token, id, status); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to update feedback"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": "Status updated successfully!"})
}

func (h *BoardHandler) delete(c echo.Context, token string) error {
	id := c.FormValue("id")

	if err := h.feedback.Delete(c.Request().Context(), token, id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to delete feedback"})
	}
	// Success string kept as shipped by the original portal.
	return c.JSON(http.StatusOK, echo.Map{"success": "Feedback delete successfully!"})
}
