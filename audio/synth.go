package audio

import (
	"encoding/binary"
	"math"
)

// frameBytes is one stereo float32 frame.
const frameBytes = 8

// writeFrame stores a [-1,1] sample into both channels of frame i as
// float32 LE.
func writeFrame(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	binary.LittleEndian.PutUint32(buf[i*frameBytes:], bits)
	binary.LittleEndian.PutUint32(buf[i*frameBytes+4:], bits)
}

// softSat bends peaks beyond unity back into range instead of hard-clipping,
// so summed layers stay inside [-1,1].
func softSat(x float64) float64 {
	switch {
	case x > 1:
		return 1 - 0.5/x
	case x < -1:
		return -1 - 0.5/x
	default:
		return x - x*x*x/3
	}
}

// adsr evaluates a linear attack/decay/sustain/release envelope at
// normalized progress in [0,1]. attack, decay, and release are fractions of
// the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	if progress < attack {
		return progress / attack
	}
	if progress < attack+decay {
		return 1 - (1-sustain)*(progress-attack)/decay
	}
	if progress < 1-release {
		return sustain
	}
	return sustain * (1 - progress) / release
}

// fm is a two-operator FM voice: a sine carrier with a sine modulator at
// modRatio times the carrier frequency.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	phase := 2 * math.Pi * carrier * t
	return math.Sin(phase + modIdx*math.Sin(phase*modRatio))
}

// lcg steps a 64-bit linear congruential generator and maps the top bits to
// a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-(1<<30)) / (1 << 30)
}

// genEat renders a short rising chirp.
func genEat() []byte {
	n := int(0.08 * sampleRate)
	buf := make([]byte, n*frameBytes)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.1, 0.2)
		freq := 520 + 640*p
		s := fm(t, freq, 2.0, 2.5*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		writeFrame(buf, i, softSat(s))
	}
	return buf
}

// genCollision renders a falling thud with a noise burst on top.
func genCollision() []byte {
	n := int(0.25 * sampleRate)
	buf := make([]byte, n*frameBytes)
	seed := uint64(777)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 6)
		freq := 220 - 150*p
		thud := fm(t, freq, 0.5, 1.8) * env * 0.6
		lp = lp*0.82 + lcg(&seed)*0.18
		noise := lp * math.Exp(-p*12) * 0.5
		writeFrame(buf, i, softSat(thud+noise))
	}
	return buf
}
