package spectrum

import (
	"math"

	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

// Envelope holds the dequantised envelope and noise floor of one channel
// for one frame.
type Envelope struct {
	// EOrig is the reference energy per resolution band and envelope.
	EOrig [syntax.MaxBands][syntax.MaxEnvelopes]float32

	// QDiv is 1/(1+Q) and QDiv2 is Q/(1+Q) for the noise floor Q of each
	// noise band and floor. Both are 0 for out-of-range values.
	QDiv  [syntax.MaxNoiseBands][syntax.MaxNoiseFloors]float32
	QDiv2 [syntax.MaxNoiseBands][syntax.MaxNoiseFloors]float32
}

const sqrt2 = float32(math.Sqrt2)

// ampShift returns how far envelope values are shifted before use: 1 at
// 1.5 dB resolution, 0 at 3 dB.
func ampShift(ch *syntax.Channel) uint {
	if ch.AmpRes {
		return 0
	}
	return 1
}

// envelopeEnergy returns 64*2^exp, times sqrt(2) for the odd half steps of
// the 1.5 dB scale. e is the stored value and exp its shifted exponent.
func envelopeEnergy(e int, exp int, amp uint) float32 {
	v := float32(math.Ldexp(1, exp+6))
	if amp == 1 && e&1 != 0 {
		v *= sqrt2
	}
	return v
}

// noiseDivs returns 1/(1+q) and q/(1+q).
func noiseDivs(q float64) (float32, float32) {
	return float32(1 / (1 + q)), float32(q / (1 + q))
}

// Dequantise converts the integer envelope and noise floor values of an
// uncoupled channel to linear energies.
// Source: ISO/IEC 14496-3, 4.6.18.3.5 (dequantisation)
func Dequantise(ch *syntax.Channel, b *tables.Bands, env *Envelope) {
	g := &ch.Grid
	amp := ampShift(ch)

	for l := range g.LE {
		for k := range b.N[g.F[l]] {
			e := ch.E[k][l]
			exp := e >> amp
			if exp < 0 || exp >= 64 {
				env.EOrig[k][l] = 0
				continue
			}
			env.EOrig[k][l] = envelopeEnergy(e, exp, amp)
		}
	}

	for l := range g.LQ {
		for k := range b.NQ {
			q := ch.Q[k][l]
			if q < 0 || q > 30 {
				env.QDiv[k][l], env.QDiv2[k][l] = 0, 0
				continue
			}
			env.QDiv[k][l], env.QDiv2[k][l] = noiseDivs(math.Ldexp(1, 6-q))
		}
	}
}

// pan returns 1/(1+2^(i-12)), the share of a balance value i (in doubled
// units) that goes to the right channel. The left share is pan(24-i).
func pan(i int) float32 {
	return float32(1 / (1 + math.Ldexp(1, i-12)))
}

// Unmap converts the envelope and noise floor of a coupled pair, stored as
// level in left and balance in right, to per-channel linear energies.
// Source: ISO/IEC 14496-3, 4.6.18.3.5 (coupled stereo)
func Unmap(left, right *syntax.Channel, b *tables.Bands, envL, envR *Envelope) {
	g := &left.Grid
	amp0 := ampShift(left)
	amp1 := ampShift(right)

	for l := range g.LE {
		for k := range b.N[g.F[l]] {
			e0 := left.E[k][l]
			exp0 := e0>>amp0 + 1
			exp1 := right.E[k][l] >> amp1

			if exp0 < 0 || exp0 >= 64 || exp1 < 0 || exp1 > 24 {
				envL.EOrig[k][l], envR.EOrig[k][l] = 0, 0
				continue
			}

			tmp := envelopeEnergy(e0, exp0, amp0)
			envL.EOrig[k][l] = tmp * pan(24-exp1)
			envR.EOrig[k][l] = tmp * pan(exp1)
		}
	}

	for l := range g.LQ {
		for k := range b.NQ {
			q0 := left.Q[k][l]
			q1 := right.Q[k][l]

			if q0 < 0 || q0 > 30 || q1 < 0 || q1 > 24 {
				envL.QDiv[k][l], envL.QDiv2[k][l] = 0, 0
				envR.QDiv[k][l], envR.QDiv2[k][l] = 0, 0
				continue
			}

			level := math.Ldexp(1, 7-q0)
			envL.QDiv[k][l], envL.QDiv2[k][l] = noiseDivs(level / (1 + math.Ldexp(1, 12-q1)))
			envR.QDiv[k][l], envR.QDiv2[k][l] = noiseDivs(level / (1 + math.Ldexp(1, q1-12)))
		}
	}
}
