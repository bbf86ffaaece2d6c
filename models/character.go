package models

import "encoding/json"

type CharacterRequest struct {
	Realm       string `json:"realm" binding:"required"`
	Name        string `json:"name" binding:"required"`
	GameVersion string `json:"game_version"`
}

type SetMainRequest struct {
	Realm       string `json:"realm" binding:"required"`
	Name        string `json:"name" binding:"required"`
	GameVersion string `json:"game_version"`
}

type SocialLinksRequest struct {
	Discord   *string `json:"discord"`
	Twitch    *string `json:"twitch"`
	Twitter   *string `json:"twitter"`
	Youtube   *string `json:"youtube"`
	Instagram *string `json:"instagram"`
}

// CharacterView is the aggregated character response. Profile always carries
// the provider's character object (with media merged in under "media");
// equipment and pvp are null when their upstream fetches fail.
type CharacterView struct {
	Profile   map[string]any  `json:"profile"`
	Equipment json.RawMessage `json:"equipment"`
	PvP       json.RawMessage `json:"pvp"`
}

// AccountProfiles is the signed-in account summary, one provider profile per
// game version. Either side is null when the upstream fetch fails.
type AccountProfiles struct {
	Retail  json.RawMessage `json:"retail"`
	Classic json.RawMessage `json:"classic"`
}
