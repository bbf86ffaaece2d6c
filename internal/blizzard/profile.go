package blizzard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// profileQuery builds the standard Game Data query parameters.
func profileQuery(namespace string) url.Values {
	query := url.Values{}
	query.Set("namespace", namespace)
	query.Set("locale", locale)
	return query
}

func (c *Client) characterURL(region, realm, name, suffix string) string {
	base := fmt.Sprintf("%s/profile/wow/character/%s/%s", c.apiBase(region), url.PathEscape(realm), url.PathEscape(name))
	if suffix != "" {
		base += "/" + suffix
	}
	return base
}

// CharacterProfile fetches the character summary, the one mandatory piece of
// an aggregated character view.
func (c *Client) CharacterProfile(ctx context.Context, token, region, realm, name, namespace string) (map[string]any, error) {
	var profile map[string]any
	if err := c.get(ctx, c.characterURL(region, realm, name, ""), token, profileQuery(namespace), &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CharacterEquipment fetches the equipped-items sub-resource.
func (c *Client) CharacterEquipment(ctx context.Context, token, region, realm, name, namespace string) (json.RawMessage, error) {
	var equipment json.RawMessage
	if err := c.get(ctx, c.characterURL(region, realm, name, "equipment"), token, profileQuery(namespace), &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// CharacterPvPSummary fetches the character's PvP ratings and statistics.
func (c *Client) CharacterPvPSummary(ctx context.Context, token, region, realm, name, namespace string) (json.RawMessage, error) {
	var pvp json.RawMessage
	if err := c.get(ctx, c.characterURL(region, realm, name, "pvp-summary"), token, profileQuery(namespace), &pvp); err != nil {
		return nil, err
	}
	return pvp, nil
}

// CharacterMedia fetches the character render/avatar assets.
func (c *Client) CharacterMedia(ctx context.Context, token, region, realm, name, namespace string) (json.RawMessage, error) {
	var media json.RawMessage
	if err := c.get(ctx, c.characterURL(region, realm, name, "character-media"), token, profileQuery(namespace), &media); err != nil {
		return nil, err
	}
	return media, nil
}

// UserWoWProfile fetches the signed-in account's WoW profile (character list)
// for one namespace.
func (c *Client) UserWoWProfile(ctx context.Context, token, namespace string) (json.RawMessage, error) {
	var profile json.RawMessage
	if err := c.get(ctx, c.apiBase("")+"/profile/user/wow", token, profileQuery(namespace), &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// PvPLeaderboard fetches a bracket leaderboard for the season selected by the
// dynamic namespace.
func (c *Client) PvPLeaderboard(ctx context.Context, token, bracket string, ns Namespace) (json.RawMessage, error) {
	rawURL := fmt.Sprintf("%s/data/wow/pvp-region/us/pvp-season/%d/pvp-leaderboard/%s",
		c.apiBase(""), ns.Season, url.PathEscape(bracket))

	var leaderboard json.RawMessage
	if err := c.get(ctx, rawURL, token, profileQuery(ns.Dynamic), &leaderboard); err != nil {
		return nil, err
	}
	return leaderboard, nil
}
