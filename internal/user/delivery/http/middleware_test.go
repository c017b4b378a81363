package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/twirth/lagerbestand/pkg/auth"
)

func TestAuthMiddleware(t *testing.T) {
	auth.Init("test-secret")

	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if got := ActorFromContext(r.Context()); got != "admin" {
			t.Errorf("actor: got %q, want admin", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: got %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: got %d, want 401", rec.Code)
	}

	token, err := auth.GenerateToken("1", "admin", "superadmin")
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: got %d, want 200", rec.Code)
	}
}

func TestAdminMiddleware(t *testing.T) {
	auth.Init("test-secret")

	handler := AdminMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		role string
		want int
	}{
		{"user", http.StatusForbidden},
		{"admin", http.StatusOK},
		{"superadmin", http.StatusOK},
	}
	for _, tc := range cases {
		token, err := auth.GenerateToken("1", "someone", tc.role)
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != tc.want {
			t.Errorf("role %s: got %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}

func TestActorFromContextDefaultsToSystem(t *testing.T) {
	if got := ActorFromContext(context.Background()); got != "System" {
		t.Errorf("got %q, want System", got)
	}
}
