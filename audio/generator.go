package audio

import (
	"math"
	"math/rand"

	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constant.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(constant.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(constant.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// durationToSamples converts duration in seconds to sample count
func durationToSamples(d float64) int {
	return int(d * float64(constant.AudioSampleRate))
}

// generateSound builds the unity-gain buffer for one sound type
func generateSound(st core.SoundType) floatBuffer {
	switch st {
	case core.SoundShoot:
		// Short rising blip
		buf := oscillator(waveSquare, 880, durationToSamples(0.08))
		applyEnvelope(buf, 0.005, 0.05)
		return buf

	case core.SoundExplosion:
		// Noise burst with a long tail
		buf := oscillator(waveNoise, 0, durationToSamples(0.25))
		applyEnvelope(buf, 0.002, 0.2)
		return buf

	case core.SoundGameOver:
		// Descending two-tone
		high := oscillator(waveSine, 440, durationToSamples(0.2))
		applyEnvelope(high, 0.01, 0.05)
		low := oscillator(waveSine, 220, durationToSamples(0.35))
		applyEnvelope(low, 0.01, 0.25)
		out := make(floatBuffer, len(high)+len(low))
		copy(out, high)
		copy(out[len(high):], low)
		return out
	}
	return nil
}
