package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/session"
)

type stubFeedbackService struct {
	listFn   func(ctx context.Context, accessToken string) []domain.Feedback
	createFn func(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error)
	updateFn func(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error)
	deleteFn func(ctx context.Context, accessToken, id string) error
}

func (s *stubFeedbackService) List(ctx context.Context, accessToken string) []domain.Feedback {
	if s.listFn == nil {
		return nil
	}
	return s.listFn(ctx, accessToken)
}

func (s *stubFeedbackService) Create(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	return s.createFn(ctx, accessToken, input)
}

func (s *stubFeedbackService) UpdateStatus(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error) {
	return s.updateFn(ctx, accessToken, id, status)
}

func (s *stubFeedbackService) Delete(ctx context.Context, accessToken, id string) error {
	return s.deleteFn(ctx, accessToken, id)
}

func sessionContext(t *testing.T, method string, form url.Values, role domain.RoleKind) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Renderer = NewRenderer()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, "/", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set(middleware.ContextUser, &domain.User{ID: "u1", FirstName: "Alice", LastName: "Smith"})
	c.Set(middleware.ContextRole, role)
	c.Set(middleware.ContextToken, "tok")
	return c, rec
}

func TestBoardHandler_Board_MissingSession(t *testing.T) {
	handler := NewBoardHandler(&stubFeedbackService{}, session.NewCodec("secret"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Board(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBoardHandler_Board_RendersForPublicUser(t *testing.T) {
	feedback := &stubFeedbackService{
		listFn: func(ctx context.Context, accessToken string) []domain.Feedback {
			if accessToken != "tok" {
				t.Fatalf("unexpected token: %s", accessToken)
			}
			return []domain.Feedback{{ID: "f1", Title: "Dark mode", Status: domain.StatusDraft, Category: domain.CategoryFeature}}
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodGet, nil, domain.RolePublic)
	if err := handler.Board(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "My Feedback") {
		t.Fatalf("expected public board heading")
	}
	if strings.Contains(body, "Admin Dashboard") {
		t.Fatalf("public user should not see the admin heading")
	}
	if !strings.Contains(body, "Dark mode") {
		t.Fatalf("feedback item missing from page")
	}
}

func TestBoardHandler_Board_RendersForAdmin(t *testing.T) {
	feedback := &stubFeedbackService{
		listFn: func(ctx context.Context, accessToken string) []domain.Feedback {
			return []domain.Feedback{{
				ID:        "f1",
				Title:     "Crash on save",
				Status:    domain.StatusPublished,
				Category:  domain.CategoryBug,
				CreatedBy: &domain.Author{FirstName: "Bob", LastName: "Jones"},
			}}
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodGet, nil, domain.RoleAdmin)
	if err := handler.Board(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Admin Dashboard") {
		t.Fatalf("expected admin heading")
	}
	if !strings.Contains(body, "Bob") {
		t.Fatalf("expected author badge for moderators")
	}
}

func TestBoardHandler_Action_UnknownIntent(t *testing.T) {
	handler := NewBoardHandler(&stubFeedbackService{}, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{"intent": {"escalate"}}, domain.RolePublic)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Invalid action" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Logout_ExpiresBothCookies(t *testing.T) {
	handler := NewBoardHandler(&stubFeedbackService{}, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{"intent": {"logout"}}, domain.RolePublic)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected two expired cookies, got %d", len(cookies))
	}
	for _, ck := range cookies {
		if ck.Name != session.AccessCookie && ck.Name != session.RefreshCookie {
			t.Fatalf("unexpected cookie %q", ck.Name)
		}
		if ck.MaxAge >= 0 || ck.Value != "" {
			t.Fatalf("cookie %q not expired: MaxAge=%d Value=%q", ck.Name, ck.MaxAge, ck.Value)
		}
	}
}

func TestBoardHandler_Create_MissingFields(t *testing.T) {
	handler := NewBoardHandler(&stubFeedbackService{}, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent":      {"create_feedback"},
		"title":       {"   "},
		"description": {"broken"},
	}, domain.RolePublic)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Title and Description are required" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Create_Success(t *testing.T) {
	feedback := &stubFeedbackService{
		createFn: func(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
			if accessToken != "tok" {
				t.Fatalf("unexpected token: %s", accessToken)
			}
			if input.Title != "Dark mode" || input.Category != domain.CategoryFeature {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Feedback{ID: "f1", Title: input.Title}, nil
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent":      {"create_feedback"},
		"title":       {"  Dark mode  "},
		"description": {"Please add one"},
		"category":    {"Feature"},
	}, domain.RolePublic)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["success"]; got != "Feedback created successfully!" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Create_DefaultsCategory(t *testing.T) {
	feedback := &stubFeedbackService{
		createFn: func(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
			if input.Category != domain.CategoryOther {
				t.Fatalf("expected Other category, got %s", input.Category)
			}
			return &domain.Feedback{ID: "f1"}, nil
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent":      {"create_feedback"},
		"title":       {"T"},
		"description": {"D"},
	}, domain.RolePublic)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBoardHandler_Create_RemoteFailure(t *testing.T) {
	feedback := &stubFeedbackService{
		createFn: func(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
			return nil, errors.New("backend down")
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent":      {"create_feedback"},
		"title":       {"T"},
		"description": {"D"},
	}, domain.RolePublic)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Unable to create feedback" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Update_Success(t *testing.T) {
	feedback := &stubFeedbackService{
		updateFn: func(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error) {
			if id != "f1" || status != domain.StatusPublished {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Feedback{ID: id, Status: status}, nil
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent": {"update_feedback"},
		"id":     {"f1"},
		"status": {"published"},
	}, domain.RoleAdmin)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["success"]; got != "Status updated successfully!" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Update_Failure(t *testing.T) {
	feedback := &stubFeedbackService{
		updateFn: func(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error) {
			return nil, domain.ErrInvalidStatus
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent": {"update_feedback"},
		"id":     {"f1"},
		"status": {"archived"},
	}, domain.RoleAdmin)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Unable to update feedback" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Delete_Success(t *testing.T) {
	feedback := &stubFeedbackService{
		deleteFn: func(ctx context.Context, accessToken, id string) error {
			if id != "f1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent": {"delete_feedback"},
		"id":     {"f1"},
	}, domain.RoleAdmin)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["success"]; got != "Feedback delete successfully!" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestBoardHandler_Delete_Failure(t *testing.T) {
	feedback := &stubFeedbackService{
		deleteFn: func(ctx context.Context, accessToken, id string) error {
			return errors.New("backend down")
		},
	}
	handler := NewBoardHandler(feedback, session.NewCodec("secret"))

	c, rec := sessionContext(t, http.MethodPost, url.Values{
		"intent": {"delete_feedback"},
		"id":     {"f1"},
	}, domain.RoleAdmin)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Unable to delete feedback" {
		t.Fatalf("unexpected message: %q", got)
	}
}
