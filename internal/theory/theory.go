// Package theory spells keys, scales and realized chords for the
// documentation sidecar and the audition render. It covers exactly
// what degree tokens need: seven-mode scales, triad qualities from
// numeral case, and letter-true accidental spelling.
package theory

import (
	"fmt"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

// Letters in scale order and their natural pitch classes.
var letters = []byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

var letterSemis = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// Semitone offsets of scale degrees 1..7 per mode.
var modeIntervals = map[string][7]int{
	"ionian":     {0, 2, 4, 5, 7, 9, 11},
	"dorian":     {0, 2, 3, 5, 7, 9, 10},
	"phrygian":   {0, 1, 3, 5, 7, 8, 10},
	"lydian":     {0, 2, 4, 6, 7, 9, 11},
	"mixolydian": {0, 2, 4, 5, 7, 9, 10},
	"aeolian":    {0, 2, 3, 5, 7, 8, 10},
	"locrian":    {0, 1, 3, 5, 6, 8, 10},
}

// Pitch is a spelled note: letter, accidental alteration and octave.
type Pitch struct {
	Letter byte
	Alter  int
	Octave int
}

// MIDI returns the pitch's MIDI note number (C4 = 60).
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + letterSemis[p.Letter] + p.Alter
}

func (p Pitch) String() string {
	acc := ""
	switch {
	case p.Alter > 0:
		acc = strings.Repeat("#", p.Alter)
	case p.Alter < 0:
		acc = strings.Repeat("b", -p.Alter)
	}
	return fmt.Sprintf("%c%s%d", p.Letter, acc, p.Octave)
}

// Name returns the pitch name without the octave.
func (p Pitch) Name() string {
	s := p.String()
	return s[:len(s)-1]
}

// Key is a tonic plus a mode, able to spell its scale and realize
// degree tokens as chords.
type Key struct {
	tonicIdx  int // index into letters
	tonicAlt  int
	mode      string
	intervals [7]int
}

// NewKey parses a tonic such as "C", "Eb" or "F#" and a mode name.
func NewKey(tonic, mode string) (Key, error) {
	iv, ok := modeIntervals[strings.ToLower(mode)]
	if !ok {
		return Key{}, generr.Configf("unknown mode %q, try one of: %s",
			mode, strings.Join(degree.ModeNames(), ", "))
	}
	if tonic == "" {
		return Key{}, generr.Configf("empty key tonic")
	}
	letter := tonic[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 32
	}
	idx := -1
	for i, l := range letters {
		if l == letter {
			idx = i
		}
	}
	if idx < 0 {
		return Key{}, generr.Configf("unknown key tonic %q", tonic)
	}
	alt := 0
	for _, ch := range tonic[1:] {
		switch ch {
		case 'b':
			alt--
		case '#':
			alt++
		default:
			return Key{}, generr.Configf("unknown key tonic %q", tonic)
		}
	}
	return Key{tonicIdx: idx, tonicAlt: alt, mode: strings.ToLower(mode), intervals: iv}, nil
}

// Scale spells the seven scale degrees starting at the tonic in
// octave 4, each on its own letter.
func (k Key) Scale() [7]Pitch {
	tonic := Pitch{Letter: letters[k.tonicIdx], Alter: k.tonicAlt, Octave: 4}
	base := tonic.MIDI()
	var out [7]Pitch
	for i := 0; i < 7; i++ {
		out[i] = spellAbove(k.tonicIdx+i, tonic.Octave, base+k.intervals[i])
	}
	return out
}

// spellAbove places the letter at letterIdx (letter walk up from the
// tonic, wrapping past B into the next octave) on the target MIDI
// note, choosing the alteration that keeps the letter.
func spellAbove(letterIdx, baseOctave, targetMIDI int) Pitch {
	octave := baseOctave + letterIdx/7
	letter := letters[letterIdx%7]
	natural := Pitch{Letter: letter, Octave: octave}
	return Pitch{Letter: letter, Alter: targetMIDI - natural.MIDI(), Octave: octave}
}

// Chord is one realized degree: its figure, root and triad pitches.
type Chord struct {
	Figure  string
	Root    Pitch
	Pitches []Pitch
}

// Realize builds the triad for a degree token in this key. Leading
// accidentals shift the scale-degree root chromatically; quality
// follows numeral case (upper major, lower minor) and the diminished
// mark.
func (k Key) Realize(d degree.Degree) (Chord, error) {
	row, err := d.Row()
	if err != nil {
		return Chord{}, err
	}
	shift := 0
	for _, ch := range d.Accidentals() {
		if ch == 'b' {
			shift--
		} else {
			shift++
		}
	}
	scale := k.Scale()
	root := scale[row-1]
	root.Alter += shift
	third, fifth := 4, 7
	core := d.Core()
	if core[0] >= 'a' && core[0] <= 'z' {
		third = 3
	}
	if d.Diminished() {
		third, fifth = 3, 6
	}
	rootIdx := letterIndex(root.Letter)
	pitches := []Pitch{
		root,
		spellInterval(root, rootIdx+2, third),
		spellInterval(root, rootIdx+4, fifth),
	}
	return Chord{Figure: d.String(), Root: root, Pitches: pitches}, nil
}

func letterIndex(l byte) int {
	for i, c := range letters {
		if c == l {
			return i
		}
	}
	return 0
}

func spellInterval(root Pitch, letterIdx, semis int) Pitch {
	octave := root.Octave + letterIdx/7
	letter := letters[letterIdx%7]
	natural := Pitch{Letter: letter, Octave: octave}
	return Pitch{Letter: letter, Alter: root.MIDI() + semis - natural.MIDI(), Octave: octave}
}
