package audition

import (
	"encoding/binary"
	"math"

	"github.com/cbegin/progmap-go/internal/theory"
)

// RenderChords renders the chords as consecutive block chords and
// returns interleaved stereo float32 samples. Output is deterministic
// for fixed (chords, params).
func RenderChords(chords []theory.Chord, p Params) []float32 {
	sr := float64(p.SampleRate)
	chordSec := 60.0 / p.BPM * p.BeatsPerChord
	chordFrames := int(chordSec * sr)
	total := chordFrames*len(chords) + int(p.TailSec*sr)
	out := make([]float32, total*2)
	lfo := &vibrato{depth: p.VibratoDepth, rateHz: p.VibratoRate}
	// Slight gap between chords so repeated degrees re-articulate.
	durFrames := chordFrames * 9 / 10
	for i, ch := range chords {
		for _, pitch := range ch.Pitches {
			v := &voice{freq: midiToFreq(pitch.MIDI())}
			v.render(out, i*chordFrames, durFrames, p, lfo)
		}
	}
	if p.DelayWet > 0 {
		d := newDelay(p.SampleRate, p.DelayMs, p.DelayFeedback, p.DelayCross, p.DelayWet)
		for i := 0; i < total; i++ {
			out[i*2], out[i*2+1] = d.process(out[i*2], out[i*2+1])
		}
	}
	return out
}

// EncodeWAVFloat32LE wraps samples in a 44-byte RIFF header
// (format 3, 32-bit float, little endian).
func EncodeWAVFloat32LE(samples []float32, sampleRate, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
