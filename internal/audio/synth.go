package audio

import (
	"math"
	"time"
)

// clickDuration is short enough that two clicks at 16th notes never overlap.
const clickDuration = 45 * time.Millisecond

// genClick renders the hit sound as interleaved float32 stereo: a bright FM
// blip with a fast attack and exponential tail.
func genClick(sampleRate int) []byte {
	frames := int(clickDuration.Seconds() * float64(sampleRate))
	buf := make([]byte, frames*8)

	for i := range frames {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(frames)

		env := adsr(progress, 0.02, 0.25, 0.35, 0.5) * math.Exp(-progress*3)
		// pitch drops slightly over the blip
		carrier := 1760 - 400*progress
		s := fm(t, carrier, 1.5, 2.2*(1-progress))
		putStereoF32(buf, i, softSat(0.8*env*s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := range ChannelCount {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}
