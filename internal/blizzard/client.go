package blizzard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JosephVasc/arenameta/models"
	"go.uber.org/zap"
)

const (
	DefaultOAuthBaseURL = "https://us.battle.net/oauth"
	DefaultAPIBaseURL   = "https://us.api.blizzard.com"

	// Scope requested during the authorization-code flow.
	Scope = "wow.profile openid"

	locale = "en_US"
)

// ErrNotConfigured is returned when the Battle.net client id/secret are
// missing from the environment.
var ErrNotConfigured = errors.New("blizzard API credentials not configured")

// UpstreamError is any non-2xx answer from Battle.net. The status code is
// forwarded to the caller and the raw body is kept for the error detail.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("blizzard API error: status %d, body: %s", e.StatusCode, e.Body)
}

// Client talks to the Battle.net OAuth and Game Data APIs. It performs no
// retries and no caching; failures surface as *UpstreamError.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	oauthBaseURL string
	apiBaseURL   string
	httpClient   *http.Client
	logger       *zap.Logger
}

func NewClient(config models.BlizzardConfig, logger *zap.Logger) *Client {
	oauthBase := config.OAuthBaseURL
	if oauthBase == "" {
		oauthBase = DefaultOAuthBaseURL
	}

	apiBase := config.APIBaseURL
	if apiBase == "" {
		apiBase = DefaultAPIBaseURL
	}

	return &Client{
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		redirectURI:  config.RedirectURI,
		oauthBaseURL: strings.TrimRight(oauthBase, "/"),
		apiBaseURL:   strings.TrimRight(apiBase, "/"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

// apiBase returns the Game Data host for a region. An explicit base-URL
// override wins, so tests and single-region deployments keep one host.
func (c *Client) apiBase(region string) string {
	if region == "" || region == "us" || c.apiBaseURL != DefaultAPIBaseURL {
		return c.apiBaseURL
	}
	return fmt.Sprintf("https://%s.api.blizzard.com", region)
}

// get performs a bearer-authenticated GET and decodes the JSON response into
// result. A non-2xx status becomes an *UpstreamError carrying the raw body.
func (c *Client) get(ctx context.Context, rawURL, token string, query url.Values, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

// postForm performs a form-encoded POST against the OAuth host.
func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("blizzard request failed",
			zap.String("url", req.URL.Path),
			zap.Int("status", resp.StatusCode),
		)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
