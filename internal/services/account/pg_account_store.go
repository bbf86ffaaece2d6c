package account

import (
	"context"
	"time"

	"github.com/JosephVasc/arenameta/common/data"
	"github.com/JosephVasc/arenameta/models"
	"github.com/jackc/pgx/v5"
)

// Store implementation
type PgAccountStore struct {
	Db *data.PgDbContext
}

func NewPgAccountStore(db *data.PgDbContext) *PgAccountStore {
	return &PgAccountStore{Db: db}
}

// SetMain replaces the current selection for (account_id, game_version). The
// delete and insert run in one transaction so concurrent writers on the same
// key never leave zero or two rows behind.
func (s *PgAccountStore) SetMain(ctx context.Context, selection *models.MainCharacter) error {
	return s.Db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM main_characters WHERE account_id = $1 AND game_version = $2`,
			selection.AccountID, selection.GameVersion,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO main_characters (account_id, tag, realm, name, game_version, is_main, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			selection.AccountID,
			selection.Tag,
			selection.Realm,
			selection.Name,
			selection.GameVersion,
			selection.IsMain,
			time.Now().UTC(),
		)
		return err
	})
}

func (s *PgAccountStore) GetMain(ctx context.Context, accountID string) (*models.MainCharacter, error) {
	var query = `
		SELECT account_id, tag, realm, name, game_version, is_main, created_at
		FROM main_characters
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	result := &models.MainCharacter{}
	err := s.Db.QueryRow(ctx, query, accountID).Scan(
		&result.AccountID,
		&result.Tag,
		&result.Realm,
		&result.Name,
		&result.GameVersion,
		&result.IsMain,
		&result.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return result, nil
}

// UpsertSocialLinks merges the provided fields into the row for tag. Fields
// absent from the request keep their stored values.
func (s *PgAccountStore) UpsertSocialLinks(ctx context.Context, tag string, links *models.SocialLinksRequest) error {
	var query = `
		INSERT INTO social_links (tag, discord, twitch, twitter, youtube, instagram)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tag) DO UPDATE SET
			discord   = COALESCE(EXCLUDED.discord, social_links.discord),
			twitch    = COALESCE(EXCLUDED.twitch, social_links.twitch),
			twitter   = COALESCE(EXCLUDED.twitter, social_links.twitter),
			youtube   = COALESCE(EXCLUDED.youtube, social_links.youtube),
			instagram = COALESCE(EXCLUDED.instagram, social_links.instagram)
	`

	_, err := s.Db.Exec(ctx, query,
		tag,
		links.Discord,
		links.Twitch,
		links.Twitter,
		links.Youtube,
		links.Instagram,
	)

	return err
}

func (s *PgAccountStore) GetSocialLinks(ctx context.Context, tag string) (*models.SocialLinks, error) {
	var query = `
		SELECT tag, discord, twitch, twitter, youtube, instagram
		FROM social_links
		WHERE tag = $1
	`

	result := &models.SocialLinks{}
	err := s.Db.QueryRow(ctx, query, tag).Scan(
		&result.Tag,
		&result.Discord,
		&result.Twitch,
		&result.Twitter,
		&result.Youtube,
		&result.Instagram,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return result, nil
}
