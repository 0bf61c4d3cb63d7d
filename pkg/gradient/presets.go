package gradient

import (
	"sort"
	"strings"
)

type builtin struct {
	name  string
	stops Stops
}

// builtins is a subset of the web-gradients catalog, keyed by presetKey.
var builtins = map[string]builtin{}

func init() {
	for _, p := range []struct {
		name  string
		stops []string
	}{
		{"WarmFlame", []string{"#ff9a9e 0", "#fad0c4 0.99", "#fad0c4 1"}},
		{"NightFade", []string{"#a18cd1 0", "#fbc2eb 1"}},
		{"SpringWarmth", []string{"#fad0c4 0", "#fad0c4 0.01", "#ffd1ff 1"}},
		{"JuicyPeach", []string{"#ffecd2 0", "#fcb69f 1"}},
		{"YoungPassion", []string{"#ff8177 0", "#ff867a 0", "#ff8c7f 0.21", "#f99185 0.52", "#cf556c 0.78", "#b12a5b 1"}},
		{"LadyLips", []string{"#ff9a9e 0", "#fecfef 0.99", "#fecfef 1"}},
		{"SunnyMorning", []string{"#f6d365 0", "#fda085 1"}},
		{"RainyAshville", []string{"#fbc2eb 0", "#a6c1ee 1"}},
		{"FrozenDreams", []string{"#fdcbf1 0", "#fdcbf1 0.01", "#e6dee9 1"}},
		{"WinterNeva", []string{"#a1c4fd 0", "#c2e9fb 1"}},
		{"DustyGrass", []string{"#d4fc79 0", "#96e6a1 1"}},
		{"TemptingAzure", []string{"#84fab0 0", "#8fd3f4 1"}},
		{"HeavyRain", []string{"#cfd9df 0", "#e2ebf0 1"}},
		{"AmyCrisp", []string{"#a6c0fe 0", "#f68084 1"}},
		{"MeanFruit", []string{"#fccb90 0", "#d57eeb 1"}},
		{"DeepBlue", []string{"#e0c3fc 0", "#8ec5fc 1"}},
	} {
		builtins[presetKey(p.name)] = builtin{name: p.name, stops: mustStops(p.stops)}
	}
}

func mustStops(entries []string) Stops {
	stops := make(Stops, 0, len(entries))
	for _, entry := range entries {
		c, pos, ok, err := parseEntry(entry)
		if err != nil || !ok {
			panic("gradient: bad built-in stop " + entry)
		}
		stops = append(stops, Stop{Position: pos, Color: c})
	}
	if !IsValidStops(stops) {
		panic("gradient: bad built-in stop list")
	}
	return stops
}

// presetKey folds case and drops separators, so "warm-flame", "Warm Flame"
// and "WarmFlame" name the same preset.
func presetKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, name)
}

// FromPreset builds the named built-in gradient with orientation o. The
// second result is false for unknown names.
func FromPreset(o Orientation, name string) (Gradient, bool) {
	p, ok := builtins[presetKey(name)]
	if !ok {
		return Empty(o), false
	}
	return build(o, p.stops.clone()), true
}

// PresetNames lists the built-in gradient names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(builtins))
	for _, p := range builtins {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}
