package prog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/progmap-go/internal/generr"
)

func TestMakePresetCycles(t *testing.T) {
	seq, err := MakePreset("pop", 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "vi", "IV", "I", "V"}, raws(seq))
}

func TestMakePresetTruncates(t *testing.T) {
	seq, err := MakePreset("circle5", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "IV", "vii"}, raws(seq))
}

func TestMakePresetExactLength(t *testing.T) {
	seq, err := MakePreset("hyperpop_b", 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "vi", "IV", "bVII", "I", "V", "vi"}, raws(seq))
}

func TestMakePresetCaseInsensitive(t *testing.T) {
	seq, err := MakePreset("POP", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "vi", "IV"}, raws(seq))
}

func TestMakePresetUnknownListsNames(t *testing.T) {
	_, err := MakePreset("bebop", 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generr.ErrConfig))
	for _, name := range PresetNames() {
		assert.Contains(t, err.Error(), name)
	}
}
