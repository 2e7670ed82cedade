// Package grid models the three fixed trigger-grid sections, routes
// borrowed degrees across them, and emits the slot-id / MIDI-note
// mapping text.
package grid

import (
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

// Section is one of the three fixed output grids. The ordinal feeds
// the slot-id formula.
type Section int

const (
	Diatonic Section = iota
	Custom1
	Custom2
)

func (s Section) String() string {
	switch s {
	case Diatonic:
		return "diatonic"
	case Custom1:
		return "custom1"
	case Custom2:
		return "custom2"
	}
	return "unknown"
}

func (s Section) title() string {
	switch s {
	case Diatonic:
		return "Diatonic"
	case Custom1:
		return "Custom1"
	default:
		return "Custom2"
	}
}

// AllSections in emission order.
func AllSections() []Section { return []Section{Diatonic, Custom1, Custom2} }

// SectionByName resolves "diatonic", "custom1" or "custom2".
func SectionByName(name string) (Section, error) {
	switch strings.ToLower(name) {
	case "diatonic":
		return Diatonic, nil
	case "custom1":
		return Custom1, nil
	case "custom2":
		return Custom2, nil
	}
	return 0, generr.Configf("unknown section %q, try one of: custom1, custom2, diatonic", name)
}

var fallbackColumns = []degree.Degree{
	degree.Must("I"), degree.Must("V"), degree.Must("vi"),
	degree.Must("IV"), degree.Must("ii"),
}

// CycleToFive normalizes a column list to exactly five entries: an
// empty list becomes the fixed fallback, a short list is cycled whole
// and truncated, a long list is truncated. A five-entry list passes
// through unchanged.
func CycleToFive(seq []degree.Degree) []degree.Degree {
	if len(seq) == 0 {
		return fallbackColumns
	}
	if len(seq) >= 5 {
		return seq[:5]
	}
	k := (5 + len(seq) - 1) / len(seq)
	out := make([]degree.Degree, 0, k*len(seq))
	for i := 0; i < k; i++ {
		out = append(out, seq...)
	}
	return out[:5]
}

// Route assigns the degree sequence to sections. With target nil no
// routing happens and every section receives the full sequence. With a
// target custom section, the sequence is split into in-mode and
// borrowed halves: diatonic keeps the in-mode list, the target gets
// the borrowed list (or in-mode when nothing is borrowed), and the
// remaining custom section mirrors the in-mode list (or borrowed when
// nothing is in mode). When a mode is selected and borrowed degrees
// occur without permission, routing fails and nothing is emitted.
func Route(seq []degree.Degree, mode *degree.Mode, allowBorrowed bool, target *Section, sections []Section) (map[Section][]degree.Degree, error) {
	cols := make(map[Section][]degree.Degree, len(sections))
	if target == nil {
		for _, s := range sections {
			cols[s] = seq
		}
		return cols, nil
	}
	if *target == Diatonic {
		return nil, generr.Configf("borrowed degrees can only route to custom1 or custom2")
	}
	inMode, borrowed := degree.Split(seq, mode)
	if mode != nil && !allowBorrowed && len(borrowed) > 0 {
		return nil, generr.Configf("borrowed degrees present but borrowing not allowed; permit borrowing or remove them")
	}
	other := Custom1
	if *target == Custom1 {
		other = Custom2
	}
	for _, s := range sections {
		switch s {
		case Diatonic:
			cols[s] = inMode
		case *target:
			if len(borrowed) > 0 {
				cols[s] = borrowed
			} else {
				cols[s] = inMode
			}
		case other:
			if len(inMode) > 0 {
				cols[s] = inMode
			} else {
				cols[s] = borrowed
			}
		}
	}
	return cols, nil
}
