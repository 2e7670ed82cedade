// Package markov generates degree sequences by a weighted random walk
// over a transition graph. Graphs keep an explicit state order so that
// "the first state" is well defined regardless of map iteration.
package markov

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

// Edge is one weighted transition out of a state.
type Edge struct {
	To     degree.Degree
	Weight float64
}

// Graph maps states to weighted next-state edges. Rows need not sum to
// one; they are normalized when the walk starts.
type Graph struct {
	order []degree.Degree
	rows  map[string][]Edge
}

func NewGraph() *Graph {
	return &Graph{rows: make(map[string][]Edge)}
}

// SetRow installs the outgoing edges for a state, appending the state
// to the graph order on first sight.
func (g *Graph) SetRow(from degree.Degree, edges []Edge) {
	if _, seen := g.rows[from.String()]; !seen {
		g.order = append(g.order, from)
	}
	g.rows[from.String()] = edges
}

// States returns the graph's states in insertion order.
func (g *Graph) States() []degree.Degree { return g.order }

// Row returns the outgoing edges of a state, nil when the state has no
// row (a dead end).
func (g *Graph) Row(state degree.Degree) []Edge { return g.rows[state.String()] }

func normalizeRow(state string, edges []Edge) ([]Edge, error) {
	sum := 0.0
	for _, e := range edges {
		sum += e.Weight
	}
	if sum <= 0 {
		return nil, generr.Configf("transition row for %q has non-positive weight sum", state)
	}
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{To: e.To, Weight: e.Weight / sum}
	}
	return out, nil
}

// Generate walks the graph and returns length tokens, the start state
// counting as the first. With start nil the walk begins at the graph's
// first state. A state with no outgoing row silently resets the walk
// to the first state before sampling; that substitution is deliberate
// walk policy, not an error. Identical (graph, length, start, rng
// seed) yield identical sequences.
func (g *Graph) Generate(length int, start *degree.Degree, rng *rand.Rand) ([]degree.Degree, error) {
	if len(g.order) == 0 {
		return nil, generr.Configf("empty transition graph")
	}
	normalized := make(map[string][]Edge, len(g.rows))
	for state, edges := range g.rows {
		row, err := normalizeRow(state, edges)
		if err != nil {
			return nil, err
		}
		normalized[state] = row
	}
	cur := g.order[0]
	if start != nil {
		cur = *start
	}
	seq := make([]degree.Degree, 1, length)
	seq[0] = cur
	for step := 1; step < length; step++ {
		row, ok := normalized[cur.String()]
		if !ok {
			cur = g.order[0]
			row = normalized[cur.String()]
		}
		cur = sample(row, rng)
		seq = append(seq, cur)
	}
	return seq, nil
}

// sample draws from a normalized row by cumulative weight.
func sample(row []Edge, rng *rand.Rand) degree.Degree {
	r := rng.Float64()
	acc := 0.0
	for _, e := range row {
		acc += e.Weight
		if r < acc {
			return e.To
		}
	}
	return row[len(row)-1].To
}

// ParseInline parses the textual transition form
//
//	"I:ii=0.3,V=0.7; ii:V=1.0; V:I=0.6,vi=0.4"
//
// Clauses are ';'-separated, pairs ','-separated and '='-joined; both
// sides of every pair must be degree tokens.
func ParseInline(src string) (*Graph, error) {
	g := NewGraph()
	for _, clause := range strings.Split(src, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		state, rhs, found := strings.Cut(clause, ":")
		if !found {
			return nil, generr.Syntaxf("bad clause %q, use STATE:n1=p1,n2=p2", clause)
		}
		from, err := degree.Parse(strings.TrimSpace(state))
		if err != nil {
			return nil, generr.Syntaxf("bad state %q", strings.TrimSpace(state))
		}
		var edges []Edge
		for _, pair := range strings.Split(rhs, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			name, prob, found := strings.Cut(pair, "=")
			if !found {
				return nil, generr.Syntaxf("bad pair %q, use NEXT=PROB", pair)
			}
			to, err := degree.Parse(strings.TrimSpace(name))
			if err != nil {
				return nil, generr.Syntaxf("bad next state %q", strings.TrimSpace(name))
			}
			w, err := strconv.ParseFloat(strings.TrimSpace(prob), 64)
			if err != nil {
				return nil, generr.Syntaxf("bad probability %q in pair %q", strings.TrimSpace(prob), pair)
			}
			edges = append(edges, Edge{To: to, Weight: w})
		}
		g.SetRow(from, edges)
	}
	return g, nil
}
