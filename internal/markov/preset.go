package markov

import (
	"sort"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

type presetRow struct {
	from  string
	edges []Edge
}

func row(from string, pairs ...Edge) presetRow {
	return presetRow{from: from, edges: pairs}
}

func to(name string, w float64) Edge {
	return Edge{To: degree.Must(name), Weight: w}
}

func buildGraph(rows ...presetRow) *Graph {
	g := NewGraph()
	for _, r := range rows {
		g.SetRow(degree.Must(r.from), r.edges)
	}
	return g
}

var graphPresets = map[string]*Graph{
	// Pop flavor.
	"pop_basic": buildGraph(
		row("I", to("V", 0.6), to("vi", 0.2), to("IV", 0.2)),
		row("V", to("vi", 0.6), to("IV", 0.25), to("I", 0.15)),
		row("vi", to("IV", 0.7), to("ii", 0.2), to("V", 0.1)),
		row("IV", to("I", 0.6), to("V", 0.25), to("ii", 0.15)),
		row("ii", to("V", 0.8), to("IV", 0.2)),
	),
	// Jazz ii-V-I with turnarounds.
	"jazz_turn": buildGraph(
		row("I", to("vi", 0.35), to("ii", 0.35), to("IV", 0.3)),
		row("ii", to("V", 0.85), to("bII", 0.15)),
		row("V", to("I", 0.7), to("vi", 0.2), to("II", 0.1)),
		row("vi", to("ii", 0.6), to("IV", 0.25), to("V", 0.15)),
		row("IV", to("ii", 0.5), to("V", 0.3), to("I", 0.2)),
		row("bII", to("I", 1.0)),
		row("II", to("V", 1.0)),
	),
	// Andalusian minor vibes.
	"andalusian_minor": buildGraph(
		row("i", to("bVII", 0.7), to("iv", 0.3)),
		row("bVII", to("bVI", 0.8), to("V", 0.2)),
		row("bVI", to("V", 0.8), to("i", 0.2)),
		row("V", to("i", 0.85), to("bVII", 0.15)),
		row("iv", to("V", 0.7), to("i", 0.3)),
	),
	// Hyperpop A: minor core i->VII->VI, bright hops to IV/V/II.
	"hyperpop_a": buildGraph(
		row("i", to("VII", 0.55), to("VI", 0.25), to("IV", 0.1), to("V", 0.1)),
		row("VII", to("VI", 0.7), to("V", 0.15), to("II", 0.15)),
		row("VI", to("IV", 0.45), to("V", 0.35), to("i", 0.2)),
		row("IV", to("V", 0.6), to("i", 0.25), to("II", 0.15)),
		row("V", to("i", 0.6), to("VII", 0.25), to("IV", 0.15)),
		row("II", to("V", 1.0)),
	),
	// Hyperpop B: major core I->V->vi->IV with bVII color and II lift.
	"hyperpop_b": buildGraph(
		row("I", to("V", 0.6), to("vi", 0.2), to("II", 0.2)),
		row("V", to("vi", 0.55), to("IV", 0.25), to("I", 0.2)),
		row("vi", to("IV", 0.6), to("bVII", 0.25), to("V", 0.15)),
		row("IV", to("I", 0.55), to("V", 0.25), to("II", 0.2)),
		row("bVII", to("I", 0.7), to("V", 0.3)),
		row("II", to("V", 1.0)),
	),
}

// PresetNames lists the valid transition-graph preset names sorted.
func PresetNames() []string {
	names := make([]string, 0, len(graphPresets))
	for name := range graphPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset looks up a named transition graph case-insensitively.
func Preset(name string) (*Graph, error) {
	g, ok := graphPresets[strings.ToLower(name)]
	if !ok {
		return nil, generr.Configf("unknown markov preset %q, try one of: %s",
			name, strings.Join(PresetNames(), ", "))
	}
	return g, nil
}
