package progmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/progmap-go/internal/grid"
)

func raws(res *Result, s grid.Section) []string {
	out := make([]string, len(res.Columns[s]))
	for i, d := range res.Columns[s] {
		out[i] = d.String()
	}
	return out
}

func TestGeneratePresetAllSections(t *testing.T) {
	res, err := Generate(Request{
		Source: Source{Preset: "hyperpop_b"},
		Repeat: 8,
	})
	require.NoError(t, err)

	require.Len(t, res.Sequence, 8)
	assert.Equal(t, grid.AllSections(), res.Sections)

	// No mode and no routing target: every section carries the same columns.
	assert.Equal(t, raws(res, grid.Diatonic), raws(res, grid.Custom1))
	assert.Equal(t, raws(res, grid.Diatonic), raws(res, grid.Custom2))

	assert.True(t, strings.HasPrefix(res.Mapping, "// ****"))
	assert.Contains(t, res.Mapping, "// Diatonic Triads")
	assert.Contains(t, res.Mapping, "// Custom1 >>13")
	assert.Contains(t, res.Mapping, "// Custom2 7th")
	assert.True(t, strings.HasSuffix(res.Mapping, "\n"))
}

func TestGenerateProgSource(t *testing.T) {
	res, err := Generate(Request{Source: Source{Prog: "(I-V-vi-IV)*2"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "vi", "IV", "I", "V", "vi", "IV"}, raws(res, grid.Diatonic)[:8])
	require.Len(t, res.Sequence, 8)
}

func TestGenerateSeededMarkovReproducible(t *testing.T) {
	seed := int64(42)
	req := Request{
		Source: Source{MarkovPreset: "pop_basic"},
		Length: 12,
		Seed:   &seed,
	}
	a, err := Generate(req)
	require.NoError(t, err)
	b, err := Generate(req)
	require.NoError(t, err)

	require.Len(t, a.Sequence, 12)
	assert.Equal(t, raws(a, grid.Diatonic), raws(b, grid.Diatonic))
	assert.Equal(t, a.Mapping, b.Mapping)
}

func TestGenerateInlineMarkov(t *testing.T) {
	seed := int64(7)
	res, err := Generate(Request{
		Source: Source{Markov: "I:V=1.0; V:I=1.0"},
		Length: 6,
		Seed:   &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "I", "V", "I", "V"}, raws(res, grid.Diatonic)[:6])
}

func TestGenerateBorrowedRouting(t *testing.T) {
	res, err := Generate(Request{
		Source:           Source{Prog: "I-bVII-IV"},
		Mode:             "ionian",
		AllowBorrowed:    true,
		BorrowedToCustom: "custom2",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "IV"}, raws(res, grid.Diatonic))
	assert.Equal(t, []string{"bVII"}, raws(res, grid.Custom2))
	assert.Equal(t, []string{"I", "IV"}, raws(res, grid.Custom1))
}

func TestGenerateBorrowedRefused(t *testing.T) {
	_, err := Generate(Request{
		Source:           Source{Prog: "I-bVII-IV"},
		Mode:             "ionian",
		BorrowedToCustom: "custom2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestGenerateMirrorSingleSection(t *testing.T) {
	res, err := Generate(Request{
		Source: Source{Preset: "pop"},
		Mirror: "custom2",
	})
	require.NoError(t, err)
	assert.Equal(t, []grid.Section{grid.Custom2}, res.Sections)
	assert.Contains(t, res.Mapping, "// Custom2 Triads")
	assert.NotContains(t, res.Mapping, "// Diatonic")
	assert.NotContains(t, res.Mapping, "// Custom1")
}

func TestGenerateSourceExclusivity(t *testing.T) {
	_, err := Generate(Request{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = Generate(Request{Source: Source{Prog: "I-V", Preset: "pop"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestGenerateErrorClasses(t *testing.T) {
	_, err := Generate(Request{Source: Source{Prog: "(I-V"}})
	assert.True(t, errors.Is(err, ErrSyntax))

	_, err = Generate(Request{Source: Source{Preset: "pop"}, Mode: "superlocrian"})
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = Generate(Request{Source: Source{Preset: "nope"}})
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = Generate(Request{Source: Source{Prog: "IVI"}})
	assert.True(t, errors.Is(err, ErrEmission))

	_, err = Generate(Request{
		Source:      Source{Preset: "pop"},
		LaneOffsets: map[int]int{9: 4},
	})
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestGenerateBorrowedToDiatonicRejected(t *testing.T) {
	_, err := Generate(Request{
		Source:           Source{Prog: "I-V"},
		BorrowedToCustom: "diatonic",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestDocColumnsPrefersDiatonic(t *testing.T) {
	res, err := Generate(Request{Source: Source{Preset: "pop"}})
	require.NoError(t, err)
	cols := res.DocColumns()
	require.Len(t, cols, 5)
	for i, d := range res.Columns[grid.Diatonic][:5] {
		assert.Equal(t, d.String(), cols[i].String())
	}
}

func TestDocColumnsFallsBackToMirroredSection(t *testing.T) {
	res, err := Generate(Request{
		Source: Source{Preset: "pop"},
		Mirror: "custom1",
	})
	require.NoError(t, err)
	cols := res.DocColumns()
	require.Len(t, cols, 5)
	assert.Equal(t, res.Columns[grid.Custom1][0].String(), cols[0].String())
}
