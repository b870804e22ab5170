package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
)

func TestLoginSuccessInstallsToken(t *testing.T) {
	var loginAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			loginAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"token":"tok-abc"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 0, zerolog.Nop())
	sess := New(client, zerolog.Nop())

	if sess.LoggedIn() {
		t.Fatal("fresh session must be logged out")
	}
	if !sess.Login(context.Background(), "student", "secret") {
		t.Fatal("login failed")
	}
	if loginAuth != "" {
		t.Errorf("login request carried Authorization = %q", loginAuth)
	}
	if !sess.LoggedIn() || !client.HasToken() {
		t.Fatal("token not installed after successful login")
	}
}

func TestLoginFailureKeepsLoggedOut(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"error payload", `{"error":"invalid credentials"}`},
		{"empty token", `{"token":""}`},
		{"non-JSON", `oops`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := api.NewClient(srv.URL, 0, zerolog.Nop())
			sess := New(client, zerolog.Nop())

			if sess.Login(context.Background(), "student", "wrong") {
				t.Fatal("login must fail")
			}
			if sess.LoggedIn() || client.HasToken() {
				t.Fatal("failed login must leave the session logged out")
			}
		})
	}
}

func TestLogoutClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-abc"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 0, zerolog.Nop())
	sess := New(client, zerolog.Nop())

	if !sess.Login(context.Background(), "student", "secret") {
		t.Fatal("login failed")
	}
	sess.Logout()
	if sess.LoggedIn() || client.HasToken() {
		t.Fatal("logout must clear the token")
	}
}

func TestOpaqueTokenIsAccepted(t *testing.T) {
	// Tokens that are not JWTs must still log the session in; claim
	// inspection is best-effort only.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"not-a-jwt"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 0, zerolog.Nop())
	sess := New(client, zerolog.Nop())

	if !sess.Login(context.Background(), "student", "secret") {
		t.Fatal("opaque token must not fail login")
	}
}
