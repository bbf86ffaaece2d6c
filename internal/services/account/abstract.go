package account

import (
	"context"

	"github.com/JosephVasc/arenameta/models"
)

// Store persists the account-layer state: main-character selections keyed by
// (account id, game version) and social links keyed by BattleTag.
type Store interface {
	SetMain(ctx context.Context, selection *models.MainCharacter) error
	GetMain(ctx context.Context, accountID string) (*models.MainCharacter, error)
	UpsertSocialLinks(ctx context.Context, tag string, links *models.SocialLinksRequest) error
	GetSocialLinks(ctx context.Context, tag string) (*models.SocialLinks, error)
}
