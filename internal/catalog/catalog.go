package catalog

import "strings"

// TargetMapping holds the anatomical targets for one catalog exercise.
// Primary targets score at full weight; secondary targets are down-weighted
// by the engine.
type TargetMapping struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// entry is one row of the static exercise catalog. Aliases cover the common
// alternate spellings seen in logged data.
type entry struct {
	Name      string
	Aliases   []string
	Primary   []string
	Secondary []string
}

// exerciseCatalog is the versioned source-of-truth table. It is data, not
// code: lookups go through the init-built index and never mutate it.
var exerciseCatalog = []entry{
	// Chest
	{
		Name:      "bench press",
		Aliases:   []string{"flat bench press", "barbell bench press", "bb bench"},
		Primary:   []string{"chest.mid"},
		Secondary: []string{"triceps", "shoulders.front"},
	},
	{
		Name:      "incline bench press",
		Aliases:   []string{"incline press", "incline barbell press"},
		Primary:   []string{"chest.upper"},
		Secondary: []string{"shoulders.front", "triceps"},
	},
	{
		Name:      "decline bench press",
		Aliases:   []string{"decline press"},
		Primary:   []string{"chest.lower"},
		Secondary: []string{"triceps"},
	},
	{
		Name:      "dumbbell bench press",
		Aliases:   []string{"db bench press", "dumbbell press", "flat db press"},
		Primary:   []string{"chest.mid"},
		Secondary: []string{"triceps", "shoulders.front"},
	},
	{
		Name:      "incline dumbbell press",
		Aliases:   []string{"incline db press"},
		Primary:   []string{"chest.upper"},
		Secondary: []string{"shoulders.front", "triceps"},
	},
	{
		Name:      "chest fly",
		Aliases:   []string{"dumbbell fly", "pec fly", "cable fly", "cable crossover"},
		Primary:   []string{"chest.mid"},
		Secondary: []string{"shoulders.front"},
	},
	{
		Name:      "push up",
		Aliases:   []string{"pushup", "push-up", "press up"},
		Primary:   []string{"chest.mid"},
		Secondary: []string{"triceps", "shoulders.front", "core.stability"},
	},
	{
		Name:      "dip",
		Aliases:   []string{"dips", "chest dip", "parallel bar dip"},
		Primary:   []string{"chest.lower"},
		Secondary: []string{"triceps", "shoulders.front"},
	},
	{
		Name:      "machine chest press",
		Aliases:   []string{"chest press machine", "seated chest press", "chest press"},
		Primary:   []string{"chest.mid"},
		Secondary: []string{"triceps"},
	},

	// Back
	{
		Name:      "deadlift",
		Aliases:   []string{"conventional deadlift", "barbell deadlift"},
		Primary:   []string{"back.lower"},
		Secondary: []string{"legs.glutes", "legs.hamstrings", "back.lats", "forearms"},
	},
	{
		Name:      "romanian deadlift",
		Aliases:   []string{"rdl", "stiff leg deadlift"},
		Primary:   []string{"legs.hamstrings"},
		Secondary: []string{"legs.glutes", "back.lower"},
	},
	{
		Name:      "pull up",
		Aliases:   []string{"pullup", "pull-up", "wide grip pull up"},
		Primary:   []string{"back.lats"},
		Secondary: []string{"biceps", "back.upper"},
	},
	{
		Name:      "chin up",
		Aliases:   []string{"chinup", "chin-up"},
		Primary:   []string{"back.lats"},
		Secondary: []string{"biceps", "back.upper"},
	},
	{
		Name:      "lat pulldown",
		Aliases:   []string{"lat pull down", "cable pulldown"},
		Primary:   []string{"back.lats"},
		Secondary: []string{"biceps", "back.upper"},
	},
	{
		Name:      "bent over row",
		Aliases:   []string{"barbell row", "bb row", "bent over barbell row"},
		Primary:   []string{"back.upper"},
		Secondary: []string{"back.lats", "biceps", "back.lower"},
	},
	{
		Name:      "dumbbell row",
		Aliases:   []string{"db row", "one arm row", "single arm row"},
		Primary:   []string{"back.lats"},
		Secondary: []string{"back.upper", "biceps"},
	},
	{
		Name:      "seated cable row",
		Aliases:   []string{"cable row", "seated row", "low row"},
		Primary:   []string{"back.upper"},
		Secondary: []string{"back.lats", "biceps"},
	},
	{
		Name:      "t-bar row",
		Aliases:   []string{"t bar row", "landmine row"},
		Primary:   []string{"back.upper"},
		Secondary: []string{"back.lats", "biceps"},
	},
	{
		Name:      "face pull",
		Aliases:   []string{"cable face pull", "rope face pull"},
		Primary:   []string{"back.upper"},
		Secondary: []string{"shoulders.rear"},
	},
	{
		Name:      "shrug",
		Aliases:   []string{"shrugs", "barbell shrug", "dumbbell shrug"},
		Primary:   []string{"back.traps"},
		Secondary: []string{"forearms"},
	},
	{
		Name:      "back extension",
		Aliases:   []string{"hyperextension", "back raise"},
		Primary:   []string{"back.lower"},
		Secondary: []string{"legs.glutes", "legs.hamstrings"},
	},

	// Shoulders
	{
		Name:      "overhead press",
		Aliases:   []string{"ohp", "military press", "shoulder press", "standing press"},
		Primary:   []string{"shoulders.front"},
		Secondary: []string{"triceps", "core.stability"},
	},
	{
		Name:      "dumbbell shoulder press",
		Aliases:   []string{"db shoulder press", "seated dumbbell press", "arnold press"},
		Primary:   []string{"shoulders.front"},
		Secondary: []string{"triceps"},
	},
	{
		Name:      "lateral raise",
		Aliases:   []string{"side raise", "dumbbell lateral raise", "side lateral raise"},
		Primary:   []string{"shoulders.side"},
		Secondary: nil,
	},
	{
		Name:      "front raise",
		Aliases:   []string{"dumbbell front raise"},
		Primary:   []string{"shoulders.front"},
		Secondary: []string{"chest.upper"},
	},
	{
		Name:      "rear delt fly",
		Aliases:   []string{"reverse fly", "rear fly", "rear delt raise"},
		Primary:   []string{"shoulders.rear"},
		Secondary: []string{"back.upper"},
	},
	{
		Name:      "upright row",
		Aliases:   []string{"barbell upright row"},
		Primary:   []string{"shoulders.side"},
		Secondary: []string{"back.traps", "biceps"},
	},

	// Arms
	{
		Name:      "bicep curl",
		Aliases:   []string{"biceps curl", "dumbbell curl", "db curl", "barbell curl", "arm curl"},
		Primary:   []string{"biceps"},
		Secondary: []string{"forearms"},
	},
	{
		Name:      "hammer curl",
		Aliases:   []string{"dumbbell hammer curl", "neutral grip curl"},
		Primary:   []string{"biceps"},
		Secondary: []string{"forearms"},
	},
	{
		Name:      "preacher curl",
		Aliases:   []string{"ez bar preacher curl", "scott curl"},
		Primary:   []string{"biceps"},
		Secondary: []string{"forearms"},
	},
	{
		Name:      "cable curl",
		Aliases:   []string{"cable bicep curl", "rope curl"},
		Primary:   []string{"biceps"},
		Secondary: []string{"forearms"},
	},
	{
		Name:      "tricep extension",
		Aliases:   []string{"triceps extension", "overhead tricep extension"},
		Primary:   []string{"triceps"},
		Secondary: nil,
	},
	{
		Name:      "tricep pushdown",
		Aliases:   []string{"triceps pushdown", "cable pushdown", "rope pushdown"},
		Primary:   []string{"triceps"},
		Secondary: nil,
	},
	{
		Name:      "skull crusher",
		Aliases:   []string{"skullcrusher", "lying tricep extension"},
		Primary:   []string{"triceps"},
		Secondary: nil,
	},
	{
		Name:      "close grip bench press",
		Aliases:   []string{"cgbp", "narrow grip bench"},
		Primary:   []string{"triceps"},
		Secondary: []string{"chest.mid", "shoulders.front"},
	},
	{
		Name:      "wrist curl",
		Aliases:   []string{"barbell wrist curl", "reverse wrist curl"},
		Primary:   []string{"forearms"},
		Secondary: nil,
	},

	// Legs
	{
		Name:      "squat",
		Aliases:   []string{"back squat", "barbell squat", "bb squat"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes", "legs.hamstrings", "core.stability"},
	},
	{
		Name:      "front squat",
		Aliases:   []string{"barbell front squat"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes", "core.stability"},
	},
	{
		Name:      "goblet squat",
		Aliases:   []string{"kettlebell goblet squat", "dumbbell goblet squat"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes"},
	},
	{
		Name:      "leg press",
		Aliases:   []string{"machine leg press"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes", "legs.hamstrings"},
	},
	{
		Name:      "leg extension",
		Aliases:   []string{"machine leg extension", "quad extension"},
		Primary:   []string{"legs.quads"},
		Secondary: nil,
	},
	{
		Name:      "lunge",
		Aliases:   []string{"walking lunge", "dumbbell lunge", "forward lunge"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes", "legs.hamstrings"},
	},
	{
		Name:      "bulgarian split squat",
		Aliases:   []string{"split squat", "rear foot elevated split squat"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes", "legs.hamstrings"},
	},
	{
		Name:      "hack squat",
		Aliases:   []string{"machine hack squat"},
		Primary:   []string{"legs.quads"},
		Secondary: []string{"legs.glutes"},
	},
	{
		Name:      "leg curl",
		Aliases:   []string{"lying leg curl", "seated leg curl", "hamstring curl"},
		Primary:   []string{"legs.hamstrings"},
		Secondary: []string{"legs.calves"},
	},
	{
		Name:      "hip thrust",
		Aliases:   []string{"barbell hip thrust", "glute bridge"},
		Primary:   []string{"legs.glutes"},
		Secondary: []string{"legs.hamstrings"},
	},
	{
		Name:      "glute kickback",
		Aliases:   []string{"cable kickback", "donkey kick"},
		Primary:   []string{"legs.glutes"},
		Secondary: []string{"legs.hamstrings"},
	},
	{
		Name:      "good morning",
		Aliases:   []string{"barbell good morning"},
		Primary:   []string{"legs.hamstrings"},
		Secondary: []string{"back.lower", "legs.glutes"},
	},
	{
		Name:      "calf raise",
		Aliases:   []string{"standing calf raise", "seated calf raise", "calf press"},
		Primary:   []string{"legs.calves"},
		Secondary: nil,
	},

	// Core
	{
		Name:      "crunch",
		Aliases:   []string{"ab crunch", "sit up", "situp"},
		Primary:   []string{"core.abs"},
		Secondary: nil,
	},
	{
		Name:      "plank",
		Aliases:   []string{"front plank", "forearm plank"},
		Primary:   []string{"core.stability"},
		Secondary: []string{"shoulders.front"},
	},
	{
		Name:      "russian twist",
		Aliases:   []string{"seated russian twist"},
		Primary:   []string{"core.obliques"},
		Secondary: nil,
	},
	{
		Name:      "leg raise",
		Aliases:   []string{"lying leg raise", "hanging leg raise", "leg raises"},
		Primary:   []string{"core.abs"},
		Secondary: nil,
	},
	{
		Name:      "ab wheel rollout",
		Aliases:   []string{"ab wheel", "rollout"},
		Primary:   []string{"core.abs"},
		Secondary: []string{"shoulders.front", "back.lats"},
	},
	{
		Name:      "cable woodchop",
		Aliases:   []string{"woodchop", "cable chop"},
		Primary:   []string{"core.obliques"},
		Secondary: []string{"shoulders.front"},
	},

	// Compound / carries
	{
		Name:      "kettlebell swing",
		Aliases:   []string{"kb swing", "russian swing"},
		Primary:   []string{"legs.glutes"},
		Secondary: []string{"legs.hamstrings", "shoulders.front", "core.stability"},
	},
	{
		Name:      "farmers walk",
		Aliases:   []string{"farmer's walk", "farmer carry", "loaded carry"},
		Primary:   []string{"forearms"},
		Secondary: []string{"back.traps", "core.stability"},
	},
	{
		Name:      "clean and press",
		Aliases:   []string{"clean & press", "power clean and press"},
		Primary:   []string{"shoulders.front"},
		Secondary: []string{"legs.quads", "legs.glutes", "back.traps"},
	},
}

// index is the normalized-name lookup built once at init. Canonical names
// and aliases share the same map; aliases never shadow a canonical name.
var index map[string]TargetMapping

func init() {
	index = make(map[string]TargetMapping, len(exerciseCatalog)*3)
	for _, e := range exerciseCatalog {
		m := TargetMapping{Primary: e.Primary, Secondary: e.Secondary}
		index[Normalize(e.Name)] = m
		for _, alias := range e.Aliases {
			key := Normalize(alias)
			if _, exists := index[key]; !exists {
				index[key] = m
			}
		}
	}
}

// Normalize canonicalizes an exercise name for lookup: trim, lowercase,
// collapse internal whitespace runs to a single space. Idempotent.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Lookup finds the target mapping for an exercise name. Unknown exercises
// return false — callers treat that as "no target contribution", not a
// failure.
func Lookup(name string) (TargetMapping, bool) {
	m, ok := index[Normalize(name)]
	return m, ok
}

// Size returns the number of distinct lookup keys, for diagnostics.
func Size() int {
	return len(index)
}
