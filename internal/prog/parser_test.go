package prog

import (
	"errors"
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

func TestParseSimpleSequence(t *testing.T) {
	seq, err := Parse("I-V-I")
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "I"}, raws(seq))
}

func TestParseCommaAndDashAreSynonyms(t *testing.T) {
	a, err := Parse("ii,V,I")
	require.NoError(t, err)
	b, err := Parse("ii-V-I")
	require.NoError(t, err)
	assert.Equal(t, raws(a), raws(b))
}

func TestParseGroupRepetition(t *testing.T) {
	seq, err := Parse("(I-V)*2")
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "I", "V"}, raws(seq))
}

func TestParseAtomRepetition(t *testing.T) {
	seq, err := Parse("I*3 V")
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "I", "I", "V"}, raws(seq))
}

func TestParseRepetitionFlattensInPlace(t *testing.T) {
	// Repetition binds to the preceding atom, scoped per column.
	seq, err := Parse("(ii-V-I-iv-III,(IV-V-VI-ii-I*4))*3")
	require.NoError(t, err)
	assert.Len(t, seq, 39)
	assert.Equal(t, []string{"ii", "V", "I", "iv", "III", "IV", "V", "VI", "ii", "I", "I", "I", "I"}, raws(seq[:13]))
	assert.Equal(t, raws(seq[:13]), raws(seq[13:26]))
}

func TestParseWhitespaceInsignificant(t *testing.T) {
	seq, err := Parse("  ( I - V ) * 2\n\tvi ")
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "I", "V", "vi"}, raws(seq))
}

func TestParseZeroRepeat(t *testing.T) {
	seq, err := Parse("I*0 V")
	require.NoError(t, err)
	assert.Equal(t, []string{"V"}, raws(seq))
}

func TestParseSyntaxErrors(t *testing.T) {
	cases := []string{
		"(",          // unbalanced open paren
		"(I-V",       // unclosed group
		"I)",         // stray close paren
		"I*",         // missing repeat count
		"(I-V)*x",    // non-integer repeat count
		"I-",         // dangling separator
		"I-H",        // not a degree token
		"",           // empty input
		"I * -2",     // negative repeat
	}
	for _, src := range cases {
		_, err := Parse(src)
		require.Error(t, err, src)
		assert.True(t, errors.Is(err, generr.ErrSyntax), src)
	}
}
