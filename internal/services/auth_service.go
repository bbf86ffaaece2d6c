package services

import (
	"context"

	"github.com/JosephVasc/arenameta/internal/blizzard"
	"github.com/JosephVasc/arenameta/models"
	"go.uber.org/zap"
)

// AuthService drives the Battle.net authorization-code flow and resolves
// bearer tokens back to account identities.
type AuthService struct {
	client *blizzard.Client
	logger *zap.Logger
}

func NewAuthService(client *blizzard.Client, logger *zap.Logger) *AuthService {
	return &AuthService{client: client, logger: logger}
}

// BuildAuthorizeURL returns the provider redirect embedding the caller's
// opaque state value.
func (s *AuthService) BuildAuthorizeURL(state string) (string, error) {
	return s.client.AuthorizeURL(state)
}

// ExchangeCode completes the login: the authorization code is traded for an
// access token, then the token is used to fetch the account identity. The
// second step cannot start before the first completes.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (*models.CallbackResponse, error) {
	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := s.client.UserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("battle.net login completed", zap.String("tag", profile.Tag))

	return &models.CallbackResponse{AccessToken: token, Profile: *profile}, nil
}

// Identify resolves a bearer token to the account behind it.
func (s *AuthService) Identify(ctx context.Context, token string) (*models.BattleNetProfile, error) {
	return s.client.UserInfo(ctx, token)
}

// AppToken fetches a client-credentials token for application-scoped reads.
func (s *AuthService) AppToken(ctx context.Context) (string, error) {
	return s.client.ClientCredentialsToken(ctx)
}
