package models

import "time"

// BattleNetProfile is the identity returned by the provider's userinfo
// endpoint. AccountID is opaque; Tag is the human-readable BattleTag
// (Name#1234) used as the social-links key.
type BattleNetProfile struct {
	ID  string `json:"id"`
	Tag string `json:"tag"`
}

// MainCharacter is the user-designated primary character for one game
// version. Realm and Name are stored in slug (lowercase) form.
type MainCharacter struct {
	AccountID   string      `json:"account_id"`
	Tag         string      `json:"tag"`
	Realm       string      `json:"realm"`
	Name        string      `json:"name"`
	GameVersion GameVersion `json:"game_version"`
	IsMain      bool        `json:"is_main"`
	CreatedAt   time.Time   `json:"created_at"`
}

// SocialLinks holds the optional social handles for one BattleTag. Nil fields
// were never set.
type SocialLinks struct {
	Tag       string  `json:"tag"`
	Discord   *string `json:"discord"`
	Twitch    *string `json:"twitch"`
	Twitter   *string `json:"twitter"`
	Youtube   *string `json:"youtube"`
	Instagram *string `json:"instagram"`
}
