package services

import (
	"context"
	"strings"

	"github.com/JosephVasc/arenameta/internal/services/account"
	"github.com/JosephVasc/arenameta/models"
	"go.uber.org/zap"
)

// AccountService owns the local account layer: main-character selection and
// social links. Identity always comes from the provider, never from here.
type AccountService struct {
	store  account.Store
	logger *zap.Logger
}

func NewAccountService(store account.Store, logger *zap.Logger) *AccountService {
	return &AccountService{store: store, logger: logger}
}

// SetMain records realm/name in slug form; the provider only accepts
// lowercase keys and the stored row doubles as a lookup key.
func (s *AccountService) SetMain(ctx context.Context, profile *models.BattleNetProfile, realm, name string, version models.GameVersion) error {
	selection := &models.MainCharacter{
		AccountID:   profile.ID,
		Tag:         profile.Tag,
		Realm:       strings.ToLower(realm),
		Name:        strings.ToLower(name),
		GameVersion: version,
		IsMain:      true,
	}

	if err := s.store.SetMain(ctx, selection); err != nil {
		return err
	}

	s.logger.Info("main character updated",
		zap.String("tag", profile.Tag),
		zap.String("realm", selection.Realm),
		zap.String("name", selection.Name),
		zap.String("game_version", version.String()),
	)
	return nil
}

func (s *AccountService) GetMain(ctx context.Context, accountID string) (*models.MainCharacter, error) {
	return s.store.GetMain(ctx, accountID)
}

func (s *AccountService) UpsertSocialLinks(ctx context.Context, tag string, links *models.SocialLinksRequest) error {
	return s.store.UpsertSocialLinks(ctx, tag, links)
}

func (s *AccountService) GetSocialLinks(ctx context.Context, tag string) (*models.SocialLinks, error) {
	return s.store.GetSocialLinks(ctx, tag)
}
