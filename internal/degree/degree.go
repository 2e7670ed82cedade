// Package degree defines the roman-numeral chord degree token and the
// seven scale modes used to classify degrees as in-mode or borrowed.
package degree

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cbegin/progmap-go/internal/generr"
)

// Pattern accepted for a degree token: leading flat/sharp run, roman
// numeral letters, optional diminished mark.
var romanPattern = regexp.MustCompile(`^[b#]*[ivIV]+(?:°)?$`)

var rowByNumeral = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6, "VII": 7,
}

// Degree is an immutable chord-scale-degree token such as "bVII" or
// "vii°". The zero value is invalid; construct through Parse or Must.
type Degree struct {
	raw string
}

// Parse validates s against the degree grammar and returns it as a
// Degree. Validation is shape-only: "IVI" parses here and is rejected
// later when resolved to a grid row.
func Parse(s string) (Degree, error) {
	if !romanPattern.MatchString(s) {
		return Degree{}, generr.Syntaxf("not a degree token: %q", s)
	}
	return Degree{raw: s}, nil
}

// Must is Parse for static tables; it panics on an invalid token.
func Must(s string) Degree {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Degree) String() string { return d.raw }

// HasAccidental reports whether the token carries a leading b or #.
func (d Degree) HasAccidental() bool {
	return len(d.raw) > 0 && (d.raw[0] == 'b' || d.raw[0] == '#')
}

// Accidentals returns the leading accidental run, empty when none.
func (d Degree) Accidentals() string {
	core := strings.TrimLeft(d.raw, "b#")
	return d.raw[:len(d.raw)-len(core)]
}

// Diminished reports whether the token ends with the ° mark.
func (d Degree) Diminished() bool {
	return strings.HasSuffix(d.raw, "°")
}

// Core strips the leading accidentals and the trailing diminished mark,
// preserving numeral case. "bVII" -> "VII", "vii°" -> "vii".
func (d Degree) Core() string {
	return strings.TrimSuffix(strings.TrimLeft(d.raw, "b#"), "°")
}

// Row resolves the degree to grid row 1..7. Tokens whose core is not a
// canonical numeral (e.g. "IVI") fail here with an emission error.
func (d Degree) Row() (int, error) {
	row, ok := rowByNumeral[strings.ToUpper(d.Core())]
	if !ok {
		return 0, generr.Emissionf("unrecognized degree %q", d.raw)
	}
	return row, nil
}

// Mode is one of the seven scale-quality templates. Comparison against
// a mode is by stripped core, case-sensitive, so "v" is in mixolydian
// while "V" is not.
type Mode struct {
	name  string
	cores map[string]bool
}

func newMode(name string, shapes ...string) Mode {
	cores := make(map[string]bool, len(shapes))
	for _, s := range shapes {
		cores[Must(s).Core()] = true
	}
	return Mode{name: name, cores: cores}
}

var modeTable = map[string]Mode{
	"ionian":     newMode("ionian", "I", "ii", "iii", "IV", "V", "vi", "vii°"),
	"dorian":     newMode("dorian", "i", "ii", "III", "IV", "v", "vi°", "VII"),
	"phrygian":   newMode("phrygian", "i", "II", "III", "iv", "v°", "VI", "vii"),
	"lydian":     newMode("lydian", "I", "II", "iii", "iv°", "V", "vi", "vii"),
	"mixolydian": newMode("mixolydian", "I", "ii", "iii°", "IV", "v", "vi", "VII"),
	"aeolian":    newMode("aeolian", "i", "ii°", "III", "iv", "v", "VI", "VII"),
	"locrian":    newMode("locrian", "i°", "II", "III", "iv", "V", "VI", "vii"),
}

// ModeNames lists the valid mode names sorted.
func ModeNames() []string {
	names := make([]string, 0, len(modeTable))
	for name := range modeTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModeByName looks up a mode case-insensitively.
func ModeByName(name string) (Mode, error) {
	m, ok := modeTable[strings.ToLower(name)]
	if !ok {
		return Mode{}, generr.Configf("unknown mode %q, try one of: %s",
			name, strings.Join(ModeNames(), ", "))
	}
	return m, nil
}

func (m Mode) Name() string { return m.name }

// Contains reports whether the degree's core is one of the mode's
// seven degree cores.
func (m Mode) Contains(d Degree) bool {
	return m.cores[d.Core()]
}

// Split partitions seq into in-mode and borrowed degrees, preserving
// relative order. With mode nil, only an explicit leading accidental
// marks a degree as borrowed; with a mode, a degree is in-mode only if
// its core belongs to the mode and it carries no accidental.
func Split(seq []Degree, mode *Mode) (inMode, borrowed []Degree) {
	for _, d := range seq {
		ok := !d.HasAccidental()
		if mode != nil {
			ok = ok && mode.Contains(d)
		}
		if ok {
			inMode = append(inMode, d)
		} else {
			borrowed = append(borrowed, d)
		}
	}
	return inMode, borrowed
}
