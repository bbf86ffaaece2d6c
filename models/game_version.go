package models

import "fmt"

// GameVersion selects which Battle.net namespace family a request targets.
type GameVersion string

const (
	GameVersionRetail  GameVersion = "retail"
	GameVersionClassic GameVersion = "classic"
)

// ParseGameVersion rejects anything outside the two supported versions. An
// empty value defaults to retail, matching the original API behavior.
func ParseGameVersion(s string) (GameVersion, error) {
	switch s {
	case "", string(GameVersionRetail):
		return GameVersionRetail, nil
	case string(GameVersionClassic):
		return GameVersionClassic, nil
	default:
		return "", fmt.Errorf("unknown game version %q", s)
	}
}

func (v GameVersion) String() string {
	return string(v)
}
