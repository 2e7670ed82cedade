package markov

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

func raws(seq []degree.Degree) []string {
	out := make([]string, len(seq))
	for i, d := range seq {
		out[i] = d.String()
	}
	return out
}

func TestNormalizeRowEvenWeights(t *testing.T) {
	row, err := normalizeRow("I", []Edge{to("V", 1), to("vi", 1)})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, row[0].Weight, 1e-12)
	assert.InDelta(t, 0.5, row[1].Weight, 1e-12)
}

func TestNormalizeRowNonPositiveSum(t *testing.T) {
	_, err := normalizeRow("I", []Edge{to("V", 0)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrConfig))

	_, err = normalizeRow("I", []Edge{to("V", 1), to("vi", -1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrConfig))
}

func TestGenerateIsReproducibleForFixedSeed(t *testing.T) {
	g, err := Preset("pop_basic")
	require.NoError(t, err)
	a, err := g.Generate(20, nil, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := g.Generate(20, nil, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, raws(a), raws(b))
}

func TestGenerateSeedsDiffer(t *testing.T) {
	g, err := Preset("pop_basic")
	require.NoError(t, err)
	distinct := map[string]bool{}
	for seed := int64(0); seed < 10; seed++ {
		seq, err := g.Generate(20, nil, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		key := ""
		for _, d := range seq {
			key += d.String() + " "
		}
		distinct[key] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestGenerateStartCountsAndDefaults(t *testing.T) {
	g, err := Preset("pop_basic")
	require.NoError(t, err)
	seq, err := g.Generate(5, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, seq, 5)
	// First state of the preset in insertion order.
	assert.Equal(t, "I", seq[0].String())

	start := degree.Must("vi")
	seq, err = g.Generate(5, &start, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, "vi", seq[0].String())
}

func TestGenerateDeadEndResetsToFirstState(t *testing.T) {
	// "V" has no outgoing row; the walk silently restarts at "I".
	g, err := ParseInline("I:V=1.0")
	require.NoError(t, err)
	seq, err := g.Generate(4, nil, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "V", "V"}, raws(seq))
}

func TestGenerateEmptyGraph(t *testing.T) {
	g, err := ParseInline("  ")
	require.NoError(t, err)
	_, err = g.Generate(4, nil, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrConfig))
}

func TestParseInlinePreservesOrder(t *testing.T) {
	g, err := ParseInline("vi:IV=1.0; I:V=0.5,vi=0.5; V:vi=0.6,IV=0.4")
	require.NoError(t, err)
	assert.Equal(t, []string{"vi", "I", "V"}, raws(g.States()))
	row := g.Row(degree.Must("I"))
	require.Len(t, row, 2)
	assert.Equal(t, "V", row[0].To.String())
	assert.InDelta(t, 0.5, row[0].Weight, 1e-12)
}

func TestParseInlineErrors(t *testing.T) {
	cases := []string{
		"I=V=0.5",        // missing ':'
		"I:V",            // missing '='
		"H:V=1.0",        // bad state
		"I:W=1.0",        // bad next state
		"I:V=high",       // bad probability
	}
	for _, src := range cases {
		_, err := ParseInline(src)
		require.Error(t, err, src)
		assert.True(t, errors.Is(err, generr.ErrSyntax), src)
	}
}

func TestPresetUnknownListsNames(t *testing.T) {
	_, err := Preset("trance")
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrConfig))
	for _, name := range PresetNames() {
		assert.Contains(t, err.Error(), name)
	}
}
