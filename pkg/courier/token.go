package courier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"courier-admin/internal/metrics"
	"courier-admin/internal/pkg/clock"
)

const (
	tokenScope = "deliveries"
	// Tokens are treated as expired this long before the provider's own
	// expiry to absorb clock skew and in-flight latency.
	expiryMargin = 60 * time.Second
)

// TokenSource caches a single provider access token and refreshes it on
// demand through the client-credentials grant. Safe for concurrent use; a
// refresh overwrites the slot with an equally valid token, so the last
// writer winning is fine.
type TokenSource struct {
	clientID     string
	clientSecret string
	authURL      string
	httpClient   *http.Client
	clock        clock.Clock

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenSource(cfg Config, httpClient *http.Client, clk clock.Clock) *TokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &TokenSource{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		authURL:      cfg.AuthURL,
		httpClient:   httpClient,
		clock:        clk,
	}
}

// Token returns the cached access token while it is still valid, otherwise
// performs a token exchange and caches the result.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if s.clientID == "" || s.clientSecret == "" {
		return "", ErrNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.token != "" && now.Before(s.expiresAt) {
		return s.token, nil
	}

	token, expiresIn, err := s.exchange(ctx)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiresAt = now.Add(time.Duration(expiresIn)*time.Second - expiryMargin)
	return s.token, nil
}

func (s *TokenSource) exchange(ctx context.Context) (string, int64, error) {
	metrics.TokenRefreshes.Inc()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("scope", tokenScope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", 0, &AuthError{StatusCode: resp.StatusCode, Body: body}
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, &AuthError{StatusCode: resp.StatusCode, Body: body}
	}
	if tr.AccessToken == "" {
		return "", 0, &AuthError{StatusCode: resp.StatusCode, Body: body}
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}
