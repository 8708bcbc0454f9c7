package catalog

import "testing"

// TestRollupToRegion verifies the prefix rules, case-insensitivity, and the
// silent-drop behavior for unknown keys.
func TestRollupToRegion(t *testing.T) {
	cases := []struct {
		key    string
		want   Region
		mapped bool
	}{
		{"chest.mid", RegionChest, true},
		{"chest.upper", RegionChest, true},
		{"chest", RegionChest, true},
		{"shoulders.front", RegionShoulders, true},
		{"shoulders.rear", RegionShoulders, true},
		{"back.lats", RegionBack, true},
		{"back.traps", RegionBack, true},
		{"biceps", RegionBiceps, true},
		{"biceps.long", RegionBiceps, true},
		{"triceps", RegionTriceps, true},
		{"triceps.lateral", RegionTriceps, true},
		{"forearms", RegionForearms, true},
		{"legs.quads", RegionQuads, true},
		{"legs.hamstrings", RegionHamstrings, true},
		{"legs.glutes", RegionGlutes, true},
		{"legs.calves", RegionCalves, true},
		{"core.abs", RegionCore, true},
		{"core.obliques", RegionCore, true},
		{"abs", RegionCore, true},
		{"CHEST.MID", RegionChest, true},
		{" Legs.Quads ", RegionQuads, true},
		{"legs", "", false},
		{"legs.adductors", "", false},
		{"cardio", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := RollupToRegion(tc.key)
		if ok != tc.mapped {
			t.Errorf("RollupToRegion(%q) mapped = %v, want %v", tc.key, ok, tc.mapped)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("RollupToRegion(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

// TestRegionsClosedSet verifies the reporting order covers exactly the 11
// canonical regions with no duplicates.
func TestRegionsClosedSet(t *testing.T) {
	if len(Regions) != 11 {
		t.Fatalf("len(Regions) = %d, want 11", len(Regions))
	}
	seen := make(map[Region]bool, len(Regions))
	for _, r := range Regions {
		if seen[r] {
			t.Errorf("duplicate region %q", r)
		}
		seen[r] = true
	}
}
