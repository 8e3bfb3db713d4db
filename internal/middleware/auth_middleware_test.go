package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	email string
	err   error
	calls int
}

func (v *stubVerifier) Verify(string) (string, error) {
	v.calls++
	return v.email, v.err
}

func TestAuth_MissingHeader(t *testing.T) {
	verifier := &stubVerifier{email: "a@x.com"}
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/enroll", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, verifier.calls, "verifier must not run without a credential")
}

func TestAuth_MalformedHeader(t *testing.T) {
	verifier := &stubVerifier{email: "a@x.com"}
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/enroll", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
	assert.Zero(t, verifier.calls)
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("invalid token")}
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/enroll", nil)
	req.Header.Set("Authorization", "Bearer bad")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, verifier.calls)
}

func TestAuth_AttachesPrincipal(t *testing.T) {
	verifier := &stubVerifier{email: "student@example.com"}

	var got string
	var ok bool
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = Principal(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/enroll", nil)
	req.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "student@example.com", got)
}

func TestPrincipal_Absent(t *testing.T) {
	_, ok := Principal(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
