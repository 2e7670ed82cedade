// Package progmap compiles chord-degree progressions into J74
// Progressive grid mapping text. A progression comes from one of four
// sources (mini-DSL, sequence preset, Markov preset, inline Markov
// transitions); the compiled mapping assigns every (quality, section,
// column, row) slot an id and a MIDI note. Generation is a pure batch
// step: no I/O, no shared state, deterministic under an explicit seed.
package progmap

import (
	"math/rand"
	"time"

	intdegree "github.com/cbegin/progmap-go/internal/degree"
	intgenerr "github.com/cbegin/progmap-go/internal/generr"
	intgrid "github.com/cbegin/progmap-go/internal/grid"
	intmarkov "github.com/cbegin/progmap-go/internal/markov"
	intprog "github.com/cbegin/progmap-go/internal/prog"
)

// Error classes; test with errors.Is.
var (
	ErrSyntax   = intgenerr.ErrSyntax
	ErrConfig   = intgenerr.ErrConfig
	ErrEmission = intgenerr.ErrEmission
)

// Source selects exactly one progression input.
type Source struct {
	Prog         string // mini-DSL, e.g. "(ii-V-I-iv-III,(IV-V-VI-ii-I*4))*3"
	Preset       string // sequence preset name, e.g. "hyperpop_b"
	MarkovPreset string // transition-graph preset name
	Markov       string // inline transitions, e.g. "I:V=0.6,vi=0.4; V:I=1.0"
}

// Request is one generation invocation. Zero Repeat/Length default to
// 10 columns. Seed nil draws a time seed; a fixed seed reproduces the
// Markov walk bit for bit.
type Request struct {
	Source           Source
	Repeat           int
	Length           int
	Seed             *int64
	Mode             string // optional mode for borrow classification
	AllowBorrowed    bool
	BorrowedToCustom string // "", "custom1" or "custom2"
	Mirror           string // "", "all", or one section name
	StartNote        int
	RowStep          int
	LaneOffsets      map[int]int // per-quality overrides of the stock lanes
}

// Result carries the mapping text plus the intermediate routing, which
// the sidecar and audition steps reuse.
type Result struct {
	Mapping  string
	Sequence []intdegree.Degree
	Sections []intgrid.Section
	Columns  map[intgrid.Section][]intdegree.Degree
}

// Generate compiles one request. All-or-nothing: on any error the
// returned result is nil and no partial mapping exists.
func Generate(req Request) (*Result, error) {
	seq, err := buildSequence(req)
	if err != nil {
		return nil, err
	}

	var mode *intdegree.Mode
	if req.Mode != "" {
		m, err := intdegree.ModeByName(req.Mode)
		if err != nil {
			return nil, err
		}
		mode = &m
	}

	sections, err := mirrorSections(req.Mirror)
	if err != nil {
		return nil, err
	}

	var target *intgrid.Section
	if req.BorrowedToCustom != "" {
		s, err := intgrid.SectionByName(req.BorrowedToCustom)
		if err != nil {
			return nil, err
		}
		target = &s
	}

	cols, err := intgrid.Route(seq, mode, req.AllowBorrowed, target, sections)
	if err != nil {
		return nil, err
	}

	params := intgrid.EmitParams{
		StartNote:   req.StartNote,
		RowStep:     req.RowStep,
		LaneOffsets: intgrid.DefaultLaneOffsets(),
	}
	for q, off := range req.LaneOffsets {
		if q < 1 || q > 5 {
			return nil, intgenerr.Configf("lane quality %d out of range 1..5", q)
		}
		params.LaneOffsets[q] = off
	}

	text, err := intgrid.EmitMapping(cols, sections, params)
	if err != nil {
		return nil, err
	}
	return &Result{Mapping: text, Sequence: seq, Sections: sections, Columns: cols}, nil
}

func buildSequence(req Request) ([]intdegree.Degree, error) {
	src := req.Source
	count := 0
	for _, set := range []bool{src.Prog != "", src.Preset != "", src.MarkovPreset != "", src.Markov != ""} {
		if set {
			count++
		}
	}
	if count != 1 {
		return nil, intgenerr.Configf("exactly one of prog, preset, markov-preset or markov must be given")
	}

	repeat := req.Repeat
	if repeat <= 0 {
		repeat = 10
	}
	length := req.Length
	if length <= 0 {
		length = 10
	}

	switch {
	case src.Prog != "":
		return intprog.Parse(src.Prog)
	case src.Preset != "":
		return intprog.MakePreset(src.Preset, repeat)
	case src.MarkovPreset != "":
		g, err := intmarkov.Preset(src.MarkovPreset)
		if err != nil {
			return nil, err
		}
		return g.Generate(length, nil, newRand(req.Seed))
	default:
		g, err := intmarkov.ParseInline(src.Markov)
		if err != nil {
			return nil, err
		}
		return g.Generate(length, nil, newRand(req.Seed))
	}
}

// newRand builds the walk's locally owned generator; the ambient
// global source is never touched.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func mirrorSections(mirror string) ([]intgrid.Section, error) {
	if mirror == "" || mirror == "all" {
		return intgrid.AllSections(), nil
	}
	s, err := intgrid.SectionByName(mirror)
	if err != nil {
		return nil, err
	}
	return []intgrid.Section{s}, nil
}

// DocColumns picks the five columns the sidecar documents: the
// diatonic section when it has content, else the first emitted section
// with content, else the stock fallback columns.
func (r *Result) DocColumns() []intdegree.Degree {
	ordered := []intgrid.Section{intgrid.Diatonic}
	for _, s := range r.Sections {
		if s != intgrid.Diatonic {
			ordered = append(ordered, s)
		}
	}
	for _, s := range ordered {
		if len(r.Columns[s]) > 0 {
			return intgrid.CycleToFive(r.Columns[s])
		}
	}
	return intgrid.CycleToFive(nil)
}
