package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/JosephVasc/arenameta/internal/blizzard"
	"github.com/JosephVasc/arenameta/models"
	"go.uber.org/zap"
)

// CharacterService aggregates the per-character sub-resources of the Game
// Data API and serves the leaderboard and account-profile reads.
type CharacterService struct {
	client *blizzard.Client
	auth   *AuthService
	logger *zap.Logger
}

func NewCharacterService(client *blizzard.Client, auth *AuthService, logger *zap.Logger) *CharacterService {
	return &CharacterService{client: client, auth: auth, logger: logger}
}

// GetCharacter builds the full character view. The profile call must succeed;
// equipment, pvp summary and media are fetched concurrently and each failure
// degrades to a null field instead of failing the request. Media is folded
// into the character object itself, equipment and pvp stay siblings.
func (s *CharacterService) GetCharacter(ctx context.Context, token, realm, name string, version models.GameVersion) (*models.CharacterView, error) {
	realm = strings.ToLower(realm)
	name = strings.ToLower(name)
	ns := blizzard.ResolveNamespace(version)

	profile, err := s.client.CharacterProfile(ctx, token, "", realm, name, ns.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch character data: %w", err)
	}

	var (
		wg        sync.WaitGroup
		equipment json.RawMessage
		pvp       json.RawMessage
		media     json.RawMessage
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data, err := s.client.CharacterEquipment(ctx, token, "", realm, name, ns.Profile)
		if err != nil {
			s.logger.Debug("equipment unavailable", zap.String("name", name), zap.Error(err))
			return
		}
		equipment = data
	}()
	go func() {
		defer wg.Done()
		data, err := s.client.CharacterPvPSummary(ctx, token, "", realm, name, ns.Profile)
		if err != nil {
			s.logger.Debug("pvp summary unavailable", zap.String("name", name), zap.Error(err))
			return
		}
		pvp = data
	}()
	go func() {
		defer wg.Done()
		data, err := s.client.CharacterMedia(ctx, token, "", realm, name, ns.Profile)
		if err != nil {
			s.logger.Debug("character media unavailable", zap.String("name", name), zap.Error(err))
			return
		}
		media = data
	}()
	wg.Wait()

	profile["media"] = media

	return &models.CharacterView{Profile: profile, Equipment: equipment, PvP: pvp}, nil
}

// GetCharacterProfile is the minimal public character fetch, using an
// application token instead of a user one.
func (s *CharacterService) GetCharacterProfile(ctx context.Context, region, realm, name string, version models.GameVersion) (map[string]any, error) {
	token, err := s.auth.AppToken(ctx)
	if err != nil {
		return nil, err
	}

	ns := blizzard.ResolveNamespace(version)
	profile, err := s.client.CharacterProfile(ctx, token, region, strings.ToLower(realm), strings.ToLower(name), ns.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch character data: %w", err)
	}

	return profile, nil
}

// GetLeaderboard fetches a PvP bracket leaderboard with an application token.
func (s *CharacterService) GetLeaderboard(ctx context.Context, bracket string, version models.GameVersion) (json.RawMessage, error) {
	token, err := s.auth.AppToken(ctx)
	if err != nil {
		return nil, err
	}

	leaderboard, err := s.client.PvPLeaderboard(ctx, token, bracket, blizzard.ResolveNamespace(version))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PvP leaderboard: %w", err)
	}

	return leaderboard, nil
}

// GetAccountProfiles fetches the signed-in account's WoW profile for both
// game versions. Either side may come back null on upstream failure; that is
// not an error.
func (s *CharacterService) GetAccountProfiles(ctx context.Context, token string) *models.AccountProfiles {
	profiles := &models.AccountProfiles{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		data, err := s.client.UserWoWProfile(ctx, token, blizzard.ResolveNamespace(models.GameVersionRetail).Profile)
		if err != nil {
			s.logger.Debug("retail account profile unavailable", zap.Error(err))
			return
		}
		profiles.Retail = data
	}()
	go func() {
		defer wg.Done()
		data, err := s.client.UserWoWProfile(ctx, token, blizzard.ResolveNamespace(models.GameVersionClassic).Profile)
		if err != nil {
			s.logger.Debug("classic account profile unavailable", zap.Error(err))
			return
		}
		profiles.Classic = data
	}()
	wg.Wait()

	return profiles
}
