package spectrum

import (
	"github.com/llehouerou/go-sbr/internal/filterbank"
	"github.com/llehouerou/go-sbr/internal/ring"
	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

// History is the spectral history of one channel: Timing.THFGen slots kept
// from the previous frame followed by the slots of the current frame.
type History = ring.Buffer[filterbank.Slot]

// NewHistory returns a zeroed history sized for tm.
func NewHistory(tm syntax.Timing) *History {
	return ring.New[filterbank.Slot](tm.NumTimeSlotsRate() + tm.THFGen)
}

// relaxation scales the cross term of the covariance determinant.
const relaxation = 1 / (1 + 1e-6)

// Chirp carries the bandwidth expansion factors of one channel from frame
// to frame.
type Chirp struct {
	BW       [syntax.MaxNoiseBands]float32
	bwPrev   [syntax.MaxNoiseBands]float32
	invfPrev [syntax.MaxNoiseBands]syntax.InvfMode
}

// Reset forgets the previous frame's factors and modes.
func (c *Chirp) Reset() {
	*c = Chirp{}
}

// newBandwidth maps an inverse filtering mode to its target factor.
// Source: ISO/IEC 14496-3, 4.6.18.6.2 (chirp factors)
func newBandwidth(mode, prev syntax.InvfMode) float32 {
	switch mode {
	case syntax.InvfLow:
		if prev == syntax.InvfOff {
			return 0.6
		}
		return 0.75
	case syntax.InvfMid:
		return 0.9
	case syntax.InvfStrong:
		return 0.98
	default:
		if prev == syntax.InvfLow {
			return 0.6
		}
		return 0
	}
}

// Update computes the factors for the current frame's modes, smoothing
// towards the previous frame.
func (c *Chirp) Update(modes *[syntax.MaxNoiseBands]syntax.InvfMode, nq int) {
	for i := range nq {
		bw := newBandwidth(modes[i], c.invfPrev[i])
		if bw < c.bwPrev[i] {
			bw = 0.75*bw + 0.25*c.bwPrev[i]
		} else {
			bw = 0.90625*bw + 0.09375*c.bwPrev[i]
		}

		if bw < 0.015625 {
			bw = 0
		}
		if bw >= 0.99609375 {
			bw = 0.99609375
		}

		c.BW[i] = bw
		c.bwPrev[i] = bw
		c.invfPrev[i] = modes[i]
	}
}

// covariance holds the autocorrelation terms of one low band.
type covariance struct {
	r01, r02, r12 complex64
	r11, r22      float32
	det           float32
}

func norm(c complex64) float32 {
	return real(c)*real(c) + imag(c)*imag(c)
}

func conj(c complex64) complex64 {
	return complex(real(c), -imag(c))
}

// autoCorrelation estimates the covariance of band p over n slots starting
// at offset, using two slots of look-back.
func autoCorrelation(x *History, p, offset, n int) covariance {
	var ac covariance

	t2 := x.At(offset - 2)[p]
	t3 := x.At(offset - 1)[p]
	var t1 complex64
	for j := offset; j < n+offset; j++ {
		t1, t2, t3 = t2, t3, x.At(j)[p]
		ac.r01 += t3 * conj(t2)
		ac.r02 += t3 * conj(t1)
		ac.r11 += norm(t2)
	}

	first1 := x.At(offset - 1)[p]
	first2 := x.At(offset - 2)[p]
	ac.r12 = ac.r01 - t3*conj(t2) + first1*conj(first2)
	ac.r22 = ac.r11 - norm(t2) + norm(first2)

	ac.det = ac.r11*ac.r22 - relaxation*norm(ac.r12)
	return ac
}

// predictionCoefficients returns the second order forward predictor of
// band p. Unstable predictors, with |alpha|^2 >= 16, are replaced by zero.
// Source: ISO/IEC 14496-3, 4.6.18.6.2 (covariance method)
func predictionCoefficients(x *History, p, offset, n int) (alpha0, alpha1 complex64) {
	ac := autoCorrelation(x, p, offset, n)

	if ac.det != 0 {
		num := ac.r01*ac.r12 - ac.r02*complex(ac.r11, 0)
		alpha1 = complex(real(num)/ac.det, imag(num)/ac.det)
	}

	if ac.r11 != 0 {
		num := ac.r01 + alpha1*conj(ac.r12)
		alpha0 = complex(-real(num)/ac.r11, -imag(num)/ac.r11)
	}

	if norm(alpha0) >= 16 || norm(alpha1) >= 16 {
		return 0, 0
	}
	return alpha0, alpha1
}

// Generate builds the high band of the current frame by copying low band
// subbands up along the patches. Where the chirp factor of a band is
// non-zero the copy is filtered by a bandwidth-expanded second order
// predictor. Only slots covered by the frame's envelopes are written.
// Source: ISO/IEC 14496-3, 4.6.18.6.3 (HF generator)
func Generate(x *History, ch *syntax.Channel, chirp *Chirp, b *tables.Bands, tm syntax.Timing) {
	chirp.Update(&ch.InvfMode, b.NQ)

	offset := tm.THFAdj
	first := ch.Grid.TE[0]
	last := ch.Grid.TE[ch.Grid.LE]
	n := tm.NumTimeSlotsRate() + 6

	k := b.Kx
	for i := range b.NumPatches {
		for j := range b.PatchNumSubbands[i] {
			p := b.PatchStartSubband[i] + j
			bw := chirp.BW[b.MapKToG[k]]

			if bw*bw > 0 {
				alpha0, alpha1 := predictionCoefficients(x, p, offset, n)
				a0 := alpha0 * complex(bw, 0)
				a1 := alpha1 * complex(bw*bw, 0)

				t2 := x.At(first - 2 + offset)[p]
				t3 := x.At(first - 1 + offset)[p]
				var t1 complex64
				for l := first; l < last; l++ {
					t1, t2, t3 = t2, t3, x.At(l + offset)[p]
					x.At(l + offset)[k] = t3 + t2*a0 + t1*a1
				}
			} else {
				for l := first; l < last; l++ {
					s := x.At(l + offset)
					s[k] = s[p]
				}
			}
			k++
		}
	}
}
