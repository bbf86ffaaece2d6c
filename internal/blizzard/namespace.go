package blizzard

import "github.com/JosephVasc/arenameta/models"

// Namespace carries the provider partition keys for one game version. The
// profile namespace scopes character data, the dynamic namespace scopes
// region-wide data such as PvP seasons.
type Namespace struct {
	Profile string
	Dynamic string
	Season  int
}

var namespaces = map[models.GameVersion]Namespace{
	models.GameVersionRetail:  {Profile: "profile-us", Dynamic: "dynamic-us", Season: 33},
	models.GameVersionClassic: {Profile: "profile-classic-us", Dynamic: "dynamic-classic-us", Season: 1},
}

// ResolveNamespace maps a game version to its namespaces and current PvP
// season. Inputs are constrained to the enum by models.ParseGameVersion, so
// the lookup is total.
func ResolveNamespace(version models.GameVersion) Namespace {
	return namespaces[version]
}
