package blizzard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JosephVasc/arenameta/models"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type userInfoResponse struct {
	Sub       string      `json:"sub"`
	ID        json.Number `json:"id"`
	BattleTag string      `json:"battletag"`
}

// AuthorizeURL builds the Battle.net authorization redirect for the frontend.
// The state value is passed through opaque; CSRF checking is the caller's job.
func (c *Client) AuthorizeURL(state string) (string, error) {
	if c.clientID == "" {
		return "", ErrNotConfigured
	}

	query := url.Values{}
	query.Set("client_id", c.clientID)
	query.Set("redirect_uri", c.redirectURI)
	query.Set("response_type", "code")
	query.Set("scope", Scope)
	query.Set("state", state)

	return c.oauthBaseURL + "/authorize?" + query.Encode(), nil
}

// ExchangeCode trades an authorization code for a user access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	var token tokenResponse
	if err := c.postForm(ctx, c.oauthBaseURL+"/token", form, &token); err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return token.AccessToken, nil
}

// ClientCredentialsToken fetches an application token for endpoints that act
// on behalf of the service rather than a signed-in user.
func (c *Client) ClientCredentialsToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	var token tokenResponse
	if err := c.postForm(ctx, c.oauthBaseURL+"/token", form, &token); err != nil {
		return "", fmt.Errorf("failed to get Blizzard token: %w", err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return token.AccessToken, nil
}

// UserInfo resolves the identity behind a user access token. The numeric id
// backs up the sub claim; the BattleTag is required.
func (c *Client) UserInfo(ctx context.Context, token string) (*models.BattleNetProfile, error) {
	var info userInfoResponse
	if err := c.get(ctx, c.oauthBaseURL+"/userinfo", token, nil, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	if info.BattleTag == "" {
		return nil, fmt.Errorf("userinfo response missing battletag")
	}

	accountID := info.Sub
	if accountID == "" {
		accountID = info.ID.String()
	}

	return &models.BattleNetProfile{ID: accountID, Tag: info.BattleTag}, nil
}
