package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

type stubAuthService struct {
	admin     *domain.Admin
	token     string
	err       error
	updated   *ports.UpdateAdminInput
	deletedID string
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*domain.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.admin, nil
}

func (s *stubAuthService) GetAdmin(ctx context.Context, id string) (*domain.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAuthService) UpdateAdmin(ctx context.Context, id string, input ports.UpdateAdminInput) (*domain.Admin, error) {
	s.updated = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAuthService) DeleteAdmin(ctx context.Context, id string) error {
	s.deletedID = id
	return s.err
}

type stubGuard struct {
	secret string
	token  string
	err    error
}

func (s *stubGuard) Generate() (string, string, error) {
	return s.secret, s.token, s.err
}

func (s *stubGuard) Validate(headerValue, cookieSecret string) error { return nil }

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminHandler_CsrfToken(t *testing.T) {
	h := NewAdminHandler(&stubAuthService{}, &stubGuard{secret: "secret-1", token: "Csrf abc123"})
	c, rec := newTestContext(http.MethodGet, "/admin/csrftoken", "")

	if err := h.CsrfToken(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var resp struct {
		CsrfToken string `json:"csrf_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CsrfToken != "Csrf abc123" {
		t.Fatalf("expected csrf token in body, got %q", resp.CsrfToken)
	}

	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "csrf_secret=secret-1") {
		t.Fatalf("expected csrf_secret cookie, got %q", setCookie)
	}
}

func TestAdminHandler_Register(t *testing.T) {
	admin := &domain.Admin{ID: "admin-1", Email: "owner@example.com"}
	h := NewAdminHandler(&stubAuthService{admin: admin}, &stubGuard{})
	c, rec := newTestContext(http.MethodPost, "/admin/register", `{"email":"owner@example.com","password":"s3cret-pass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "owner@example.com") {
		t.Fatalf("expected admin in body, got %s", rec.Body.String())
	}
}

func TestAdminHandler_RegisterValidation(t *testing.T) {
	h := NewAdminHandler(&stubAuthService{}, &stubGuard{})

	for _, body := range []string{
		`{"email":"not-an-email","password":"s3cret-pass"}`,
		`{"email":"owner@example.com","password":"short"}`,
		`{}`,
	} {
		c, _ := newTestContext(http.MethodPost, "/admin/register", body)
		err := h.Register(c)
		if !errors.Is(err, domain.ErrBadRequest) {
			t.Fatalf("body %s: expected ErrBadRequest, got %v", body, err)
		}
	}
}

func TestAdminHandler_LoginSetsCookie(t *testing.T) {
	admin := &domain.Admin{ID: "admin-1", Email: "owner@example.com"}
	h := NewAdminHandler(&stubAuthService{admin: admin, token: "signed-token"}, &stubGuard{})
	c, rec := newTestContext(http.MethodPost, "/admin/login", `{"email":"owner@example.com","password":"s3cret-pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "access_token=") || !strings.Contains(setCookie, "signed-token") {
		t.Fatalf("expected access_token cookie, got %q", setCookie)
	}
	if !strings.Contains(setCookie, "HttpOnly") {
		t.Fatalf("expected HttpOnly cookie, got %q", setCookie)
	}
	if strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("token must not leak into the response body: %s", rec.Body.String())
	}
}

func TestAdminHandler_LoginRejected(t *testing.T) {
	h := NewAdminHandler(&stubAuthService{err: domain.ErrUnauthorizedAdmin}, &stubGuard{})
	c, rec := newTestContext(http.MethodPost, "/admin/login", `{"email":"owner@example.com","password":"wrong-pass"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrUnauthorizedAdmin) {
		t.Fatalf("expected ErrUnauthorizedAdmin, got %v", err)
	}
	if rec.Header().Get("Set-Cookie") != "" {
		t.Fatalf("no cookie expected on failed login, got %q", rec.Header().Get("Set-Cookie"))
	}
}

func TestAdminHandler_LogoutClearsCookie(t *testing.T) {
	h := NewAdminHandler(&stubAuthService{}, &stubGuard{})
	c, rec := newTestContext(http.MethodPost, "/admin/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "access_token=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Fatalf("expected expired access_token cookie, got %q", setCookie)
	}
}

func TestAdminHandler_MyInfoRequiresAuth(t *testing.T) {
	h := NewAdminHandler(&stubAuthService{admin: &domain.Admin{ID: "admin-1"}}, &stubGuard{})
	c, _ := newTestContext(http.MethodGet, "/admin/myinfo", "")

	err := h.MyInfo(c)
	if !errors.Is(err, domain.ErrUnauthorizedAdmin) {
		t.Fatalf("expected ErrUnauthorizedAdmin without admin_id, got %v", err)
	}
}

func TestAdminHandler_Update(t *testing.T) {
	svc := &stubAuthService{admin: &domain.Admin{ID: "admin-1", Email: "new@example.com"}}
	h := NewAdminHandler(svc, &stubGuard{})
	c, rec := newTestContext(http.MethodPut, "/admin", `{"email":"new@example.com"}`)
	c.Set("admin_id", "admin-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updated == nil || svc.updated.Email == nil || *svc.updated.Email != "new@example.com" {
		t.Fatalf("expected email update forwarded, got %+v", svc.updated)
	}
	if svc.updated.Password != nil {
		t.Fatalf("password should stay nil when omitted, got %v", *svc.updated.Password)
	}
}

func TestAdminHandler_DeleteClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAdminHandler(svc, &stubGuard{})
	c, rec := newTestContext(http.MethodDelete, "/admin", "")
	c.Set("admin_id", "admin-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if svc.deletedID != "admin-1" {
		t.Fatalf("expected delete for admin-1, got %q", svc.deletedID)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("expected expired cookie, got %q", rec.Header().Get("Set-Cookie"))
	}
}
