// Package audition renders a progression's realized chords to stereo
// samples for a batch preview WAV. One small 2-operator FM voice per
// chord tone, a shared vibrato LFO, and a delay tail; no audio device
// and no real-time path.
package audition

import "math"

const twoPi = math.Pi * 2

// Params holds the render tuning. Defaults give a soft pad-like
// preview that survives five stacked triads without clipping.
type Params struct {
	SampleRate    int
	BPM           float64
	BeatsPerChord float64
	ModMul        float64 // modulator frequency multiple of the carrier
	ModIndex      float64
	AttackSec     float64
	DecaySec      float64
	SustainLvl    float64
	ReleaseSec    float64
	MasterGain    float64
	VibratoDepth  float64 // semitones
	VibratoRate   float64 // Hz
	DelayMs       float64
	DelayFeedback float32
	DelayCross    float32
	DelayWet      float32
	TailSec       float64
}

func DefaultParams() Params {
	return Params{
		SampleRate:    48000,
		BPM:           120,
		BeatsPerChord: 2,
		ModMul:        2.0,
		ModIndex:      1.1,
		AttackSec:     0.01,
		DecaySec:      0.25,
		SustainLvl:    0.6,
		ReleaseSec:    0.3,
		MasterGain:    0.18,
		VibratoDepth:  0.06,
		VibratoRate:   5.5,
		DelayMs:       310,
		DelayFeedback: 0.35,
		DelayCross:    0.4,
		DelayWet:      0.22,
		TailSec:       1.2,
	}
}

// vibrato is a triangle low-frequency oscillator producing a
// per-sample semitone offset in [-depth, +depth].
type vibrato struct {
	depth  float64
	rateHz float64
	phase  float64
}

func (l *vibrato) sample(sampleRate float64) float64 {
	if l.depth == 0 || l.rateHz == 0 {
		return 0
	}
	var v float64
	if l.phase < 0.5 {
		v = 4.0*l.phase - 1.0
	} else {
		v = 3.0 - 4.0*l.phase
	}
	l.phase += l.rateHz / sampleRate
	for l.phase >= 1.0 {
		l.phase -= 1.0
	}
	return v * l.depth
}

// voice is one 2-op FM tone with a linear ADSR.
type voice struct {
	freq     float64
	carPhase float64
	modPhase float64
}

// render adds durFrames of the voice into out (interleaved stereo)
// starting at startFrame, releasing over the last releaseSec.
func (v *voice) render(out []float32, startFrame, durFrames int, p Params, lfo *vibrato) {
	sr := float64(p.SampleRate)
	attack := int(p.AttackSec * sr)
	decay := int(p.DecaySec * sr)
	release := int(p.ReleaseSec * sr)
	if release > durFrames {
		release = durFrames
	}
	for i := 0; i < durFrames; i++ {
		frame := startFrame + i
		if frame*2+1 >= len(out) {
			return
		}
		env := p.SustainLvl
		switch {
		case i < attack:
			env = float64(i) / float64(attack)
		case i < attack+decay:
			t := float64(i-attack) / float64(decay)
			env = 1 + t*(p.SustainLvl-1)
		}
		if left := durFrames - i; left < release {
			env *= float64(left) / float64(release)
		}
		freq := v.freq * math.Pow(2, lfo.sample(sr)/12)
		mod := math.Sin(v.modPhase*twoPi) * p.ModIndex * env
		s := math.Sin(v.carPhase*twoPi+mod) * env * p.MasterGain
		v.carPhase += freq / sr
		v.modPhase += freq * p.ModMul / sr
		if v.carPhase >= 1 {
			v.carPhase -= 1
		}
		if v.modPhase >= 1 {
			v.modPhase -= 1
		}
		out[frame*2] += float32(s)
		out[frame*2+1] += float32(s)
	}
}

func midiToFreq(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12.0)
}
