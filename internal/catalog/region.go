package catalog

import "strings"

// Region is one of the 11 canonical muscle regions used for reporting.
type Region string

const (
	RegionChest      Region = "chest"
	RegionBack       Region = "back"
	RegionShoulders  Region = "shoulders"
	RegionBiceps     Region = "biceps"
	RegionTriceps    Region = "triceps"
	RegionForearms   Region = "forearms"
	RegionCore       Region = "core"
	RegionGlutes     Region = "glutes"
	RegionQuads      Region = "quads"
	RegionHamstrings Region = "hamstrings"
	RegionCalves     Region = "calves"
)

// Regions lists all canonical regions in their fixed reporting order.
var Regions = []Region{
	RegionChest,
	RegionBack,
	RegionShoulders,
	RegionBiceps,
	RegionTriceps,
	RegionForearms,
	RegionCore,
	RegionGlutes,
	RegionQuads,
	RegionHamstrings,
	RegionCalves,
}

// RollupToRegion maps a dotted target key (e.g. "chest.mid",
// "legs.hamstrings") to its canonical region. Keys that match no rule
// return false and contribute nothing — that is not an error.
func RollupToRegion(targetKey string) (Region, bool) {
	key := strings.ToLower(strings.TrimSpace(targetKey))
	switch {
	case strings.HasPrefix(key, "chest"):
		return RegionChest, true
	case strings.HasPrefix(key, "shoulders"):
		return RegionShoulders, true
	case strings.HasPrefix(key, "back"):
		return RegionBack, true
	case key == "biceps" || strings.HasPrefix(key, "biceps."):
		return RegionBiceps, true
	case key == "triceps" || strings.HasPrefix(key, "triceps."):
		return RegionTriceps, true
	case key == "forearms":
		return RegionForearms, true
	case key == "legs.quads":
		return RegionQuads, true
	case key == "legs.hamstrings":
		return RegionHamstrings, true
	case key == "legs.glutes":
		return RegionGlutes, true
	case key == "legs.calves":
		return RegionCalves, true
	case strings.HasPrefix(key, "core") || key == "abs":
		return RegionCore, true
	default:
		return "", false
	}
}
