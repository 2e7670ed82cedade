package prog

import (
	"sort"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

func degrees(raws ...string) []degree.Degree {
	out := make([]degree.Degree, len(raws))
	for i, r := range raws {
		out[i] = degree.Must(r)
	}
	return out
}

var presets = map[string][]degree.Degree{
	"pop":        degrees("I", "V", "vi", "IV"),
	"jazz_iiv1":  degrees("ii", "V", "I"),
	"circle5":    degrees("I", "IV", "vii", "iii", "vi", "ii", "V", "I"),
	"andalusian": degrees("i", "bVII", "bVI", "V"),
	"modal_mix":  degrees("I", "bVII", "IV"),
	"sec_dom":    degrees("iii", "VI", "ii", "V", "I"),
	// Hyperpop A: minor-leaning 1-7-6 core with bright pivots.
	"hyperpop_a": degrees("i", "VII", "VI", "IV", "V", "i", "VII", "VI"),
	// Hyperpop B: major-leaning I-V-vi-IV with bVII color.
	"hyperpop_b": degrees("I", "V", "vi", "IV", "bVII", "I", "V", "vi"),
}

// PresetNames lists the valid preset names sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MakePreset cycles the named preset list until it reaches length
// items, then truncates to exactly length. Lookup is case-insensitive.
func MakePreset(name string, length int) ([]degree.Degree, error) {
	base, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, generr.Configf("unknown preset %q, try one of: %s",
			name, strings.Join(PresetNames(), ", "))
	}
	out := make([]degree.Degree, 0, length)
	for len(out) < length {
		out = append(out, base...)
	}
	return out[:length], nil
}
