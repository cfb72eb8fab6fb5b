package delivery

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	user *ports.AuthUser
	err  error
}

func (f *fakeIdentity) SignUp(context.Context, string, string) (*ports.AuthUser, error) {
	return f.user, f.err
}

func (f *fakeIdentity) SignIn(context.Context, string, string) (string, *ports.AuthUser, error) {
	return "token", f.user, f.err
}

func (f *fakeIdentity) SignOut(context.Context, string) error { return f.err }

func (f *fakeIdentity) SendPasswordReset(context.Context, string) error { return f.err }

func (f *fakeIdentity) GetUser(context.Context, string) (*ports.AuthUser, error) {
	return f.user, f.err
}

func TestAuthMiddlewareNoCookie(t *testing.T) {
	mw := AuthMiddleware(&fakeIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/sessions", nil)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a cookie")
	})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "You need to login or sign up first.")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	mw := AuthMiddleware(&fakeIdentity{err: fmt.Errorf("auth service (status 401): JWT expired")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/sessions", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "stale"})

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run with an expired token")
	})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Session expired. Please login again.")
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	want := &ports.AuthUser{ID: uuid.New(), Email: "user@example.com"}
	mw := AuthMiddleware(&fakeIdentity{user: want})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/sessions", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "good"})

	var got *ports.AuthUser
	mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
	})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, want, got)
}
