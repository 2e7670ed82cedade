package progmap

import (
	intaudition "github.com/cbegin/progmap-go/internal/audition"
	intdegree "github.com/cbegin/progmap-go/internal/degree"
	inttheory "github.com/cbegin/progmap-go/internal/theory"
)

// RenderAuditionWAV realizes cols as triads in the given key and mode
// (defaulting to C ionian) and renders them as consecutive block
// chords into a float32 stereo WAV. A pure batch render; degrees that
// cannot be realized fail with an emission error.
func RenderAuditionWAV(cols []intdegree.Degree, keyName, modeName string) ([]byte, error) {
	if keyName == "" {
		keyName = "C"
	}
	if modeName == "" {
		modeName = "ionian"
	}
	key, err := inttheory.NewKey(keyName, modeName)
	if err != nil {
		return nil, err
	}
	chords := make([]inttheory.Chord, 0, len(cols))
	for _, d := range cols {
		ch, err := key.Realize(d)
		if err != nil {
			return nil, err
		}
		chords = append(chords, ch)
	}
	params := intaudition.DefaultParams()
	samples := intaudition.RenderChords(chords, params)
	return intaudition.EncodeWAVFloat32LE(samples, params.SampleRate, 2), nil
}
