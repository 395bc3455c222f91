package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

type stubTokenService struct {
	verifyID  string
	verifyErr error
	issued    string
	issueErr  error
	issueCnt  int
}

func (s *stubTokenService) Issue(subjectID string) (string, error) {
	s.issueCnt++
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return s.issued, nil
}

func (s *stubTokenService) Verify(token string) (string, error) {
	if s.verifyErr != nil {
		return "", s.verifyErr
	}
	return s.verifyID, nil
}

func runAuth(t *testing.T, tokens *stubTokenService, cookie string) (*httptest.ResponseRecorder, error, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/myinfo", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotAdminID string
	handler := Auth(tokens)(func(c echo.Context) error {
		gotAdminID, _ = c.Get(AdminIDKey).(string)
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	return rec, err, gotAdminID
}

func TestAuth_ValidCookie(t *testing.T) {
	tokens := &stubTokenService{verifyID: "admin-1", issued: "fresh-token"}

	rec, err, adminID := runAuth(t, tokens, "Bearer old-token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if adminID != "admin-1" {
		t.Fatalf("expected admin_id admin-1 in context, got %q", adminID)
	}
	if tokens.issueCnt != 1 {
		t.Fatalf("expected one refreshed token, got %d", tokens.issueCnt)
	}

	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, AccessTokenCookie+"=") {
		t.Fatalf("expected refreshed access_token cookie, got %q", setCookie)
	}
	if !strings.Contains(setCookie, "Bearer") || !strings.Contains(setCookie, "fresh-token") {
		t.Fatalf("expected Bearer fresh-token cookie value, got %q", setCookie)
	}
	if !strings.Contains(setCookie, "HttpOnly") {
		t.Fatalf("expected HttpOnly cookie, got %q", setCookie)
	}
}

func TestAuth_MissingCookie(t *testing.T) {
	tokens := &stubTokenService{verifyID: "admin-1"}

	_, err, _ := runAuth(t, tokens, "")
	if !errors.Is(err, domain.ErrUnauthorizedAdmin) {
		t.Fatalf("expected ErrUnauthorizedAdmin, got %v", err)
	}
	if tokens.issueCnt != 0 {
		t.Fatalf("expected no token issued, got %d", tokens.issueCnt)
	}
}

func TestAuth_MalformedCookieValue(t *testing.T) {
	for _, value := range []string{"old-token", "Token old-token", "Bearer "} {
		tokens := &stubTokenService{verifyID: "admin-1"}
		_, err, _ := runAuth(t, tokens, value)
		if !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("cookie %q: expected ErrTokenInvalid, got %v", value, err)
		}
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := &stubTokenService{verifyErr: domain.ErrTokenExpired}

	_, err, _ := runAuth(t, tokens, "Bearer stale-token")
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if tokens.issueCnt != 0 {
		t.Fatalf("expected no refreshed token, got %d", tokens.issueCnt)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := &stubTokenService{verifyErr: domain.ErrTokenInvalid}

	_, err, _ := runAuth(t, tokens, "Bearer forged-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestClearAccessTokenCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ClearAccessTokenCookie(c)

	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, AccessTokenCookie+"=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Fatalf("expected expired access_token cookie, got %q", setCookie)
	}
}
