package audition

// delay is a stereo delay with feedback and cross-channel mixing,
// applied over the finished buffer to give the preview a tail.
type delay struct {
	bufL, bufR []float32
	pos        int
	feedback   float32
	cross      float32
	wet        float32
}

func newDelay(sampleRate int, delayMs float64, feedback, cross, wet float32) *delay {
	samples := int(delayMs * float64(sampleRate) / 1000.0)
	if samples < 1 {
		samples = 1
	}
	return &delay{
		bufL:     make([]float32, samples),
		bufR:     make([]float32, samples),
		feedback: clamp32(feedback, 0, 0.95),
		cross:    clamp32(cross, 0, 1),
		wet:      clamp32(wet, 0, 1),
	}
}

func (d *delay) process(l, r float32) (float32, float32) {
	delL := d.bufL[d.pos]
	delR := d.bufR[d.pos]
	fbL := delL*d.feedback*(1-d.cross) + delR*d.feedback*d.cross
	fbR := delR*d.feedback*(1-d.cross) + delL*d.feedback*d.cross
	d.bufL[d.pos] = l + fbL
	d.bufR[d.pos] = r + fbR
	d.pos++
	if d.pos >= len(d.bufL) {
		d.pos = 0
	}
	return l*(1-d.wet) + delL*d.wet, r*(1-d.wet) + delR*d.wet
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
