package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
	"github.com/pupujiger/autoeval/internal/model"
)

// Session holds the authentication state for the lifetime of the process.
// It owns the bearer token: nothing else installs or clears it on the API
// client. There is no refresh and no persistence across restarts.
type Session struct {
	client *api.Client
	log    zerolog.Logger

	token string
}

// New creates a logged-out session bound to the given API client.
func New(client *api.Client, log zerolog.Logger) *Session {
	return &Session{
		client: client,
		log:    log.With().Str("component", "session").Logger(),
	}
}

// LoggedIn reports whether a login has succeeded and not been revoked.
func (s *Session) LoggedIn() bool {
	return s.token != ""
}

// Login authenticates against the backend. It returns true only when the
// response carries a non-empty token; every other outcome (nil response,
// error payload, missing field) leaves the session logged out.
func (s *Session) Login(ctx context.Context, username, password string) bool {
	req := model.LoginRequest{Username: username, Password: password}

	raw := s.client.Call(ctx, http.MethodPost, "/auth/login", req)
	if raw == nil {
		return false
	}

	var resp model.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Token == "" {
		return false
	}

	s.token = resp.Token
	s.client.SetToken(resp.Token)
	s.inspectToken(resp.Token)
	s.log.Info().Str("username", username).Msg("logged in")
	return true
}

// Logout discards the token. Entered credentials are owned by the UI and
// cleared there.
func (s *Session) Logout() {
	s.token = ""
	s.client.ClearToken()
	s.log.Info().Msg("logged out")
}

// inspectToken parses the bearer token's registered claims without
// verifying the signature — the client holds no key — purely to surface
// the expiry in logs. Opaque (non-JWT) tokens are left alone.
func (s *Session) inspectToken(token string) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		s.log.Debug().Msg("token is not a parseable JWT")
		return
	}
	if claims.ExpiresAt == nil {
		return
	}
	if claims.ExpiresAt.Before(time.Now()) {
		s.log.Warn().Time("expired_at", claims.ExpiresAt.Time).Msg("received token is already expired")
		return
	}
	s.log.Debug().Time("expires_at", claims.ExpiresAt.Time).Msg("token expiry")
}
