package audio

import (
	"math"
)

// Output format shared with the oto context.
const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = 4 * ChannelCount // float32 little endian per channel
)

// Effect identifies a sound effect.
type Effect uint8

const (
	// EffectRoll is the thump of the block landing on a new face.
	EffectRoll Effect = iota
	// EffectFall is the sweep played when the block drops off the bridge.
	EffectFall
)

func (e Effect) String() string {
	switch e {
	case EffectRoll:
		return "roll"
	case EffectFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Synthesize renders an effect to interleaved stereo float32 LE samples.
// Unknown effects render to nil.
func Synthesize(e Effect) []byte {
	switch e {
	case EffectRoll:
		return genRoll()
	case EffectFall:
		return genFall()
	default:
		return nil
	}
}

func frames(seconds float64) int {
	return int(seconds * SampleRate)
}

// genRoll is a short low thud: a decaying sine whose pitch drops quickly.
func genRoll() []byte {
	n := frames(0.09)
	buf := make([]byte, n*BytesPerFrame)
	phase := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		freq := 140 - 600*t
		phase += 2 * math.Pi * freq / SampleRate
		env := math.Exp(-t * 45)
		putStereoF32(buf, i, softSat(0.8*env*math.Sin(phase)))
	}
	return buf
}

// genFall is a falling whistle that fades out.
func genFall() []byte {
	const dur = 0.7
	n := frames(dur)
	buf := make([]byte, n*BytesPerFrame)
	phase := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		freq := 880 * math.Pow(0.25, t/dur)
		phase += 2 * math.Pi * freq / SampleRate
		env := 0.5 * (1 - t/dur)
		putStereoF32(buf, i, softSat(env*math.Sin(phase)))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat keeps samples inside [-1,1] without hard clipping.
func softSat(x float64) float64 {
	return math.Tanh(x)
}
