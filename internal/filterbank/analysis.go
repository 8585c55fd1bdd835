// Package filterbank implements the complex QMF filter banks of SBR: the
// 32-band analysis bank that splits the core decoder output into subband
// samples, and the 64-band (or 32-band, down-sampled) synthesis bank that
// turns the extended spectrum back into PCM.
package filterbank

import (
	"github.com/llehouerou/go-sbr/internal/dct"
	"github.com/llehouerou/go-sbr/internal/ring"
)

// Slot is one QMF time slot of complex subband samples.
type Slot = [64]complex64

// Analysis is a 32-band complex analysis QMF bank.
type Analysis struct {
	x *ring.Mirror[float32] // 320-sample input history
}

// NewAnalysis returns an analysis bank with zeroed history.
func NewAnalysis() *Analysis {
	return &Analysis{x: ring.NewMirror[float32](320)}
}

// Reset clears the input history.
func (a *Analysis) Reset() {
	a.x.Reset()
}

// Process analyses len(input)/32 time slots. Slot l is written to
// history.At(offset+l). Only subbands below kx are produced; subbands kx..31
// are zeroed and 32..63 are left untouched.
// Source: ISO/IEC 14496-3, 4.6.18.4.1 (analysis filterbank)
func (a *Analysis) Process(input []float32, history *ring.Buffer[Slot], offset, kx int) {
	for l := 0; l+32 <= len(input); l += 32 {
		a.slot(input[l:l+32], history.At(offset+l/32), kx)
	}
}

func (a *Analysis) slot(in []float32, out *Slot, kx int) {
	// Newest sample goes to the lowest address.
	for n := 0; n < 32; n++ {
		a.x.Put(31-n, in[n])
	}

	x := a.x.View()
	var u [64]float32
	for n := range u {
		u[n] = x[n]*qmfWindow[2*n] +
			x[n+64]*qmfWindow[2*(n+64)] +
			x[n+128]*qmfWindow[2*(n+128)] +
			x[n+192]*qmfWindow[2*(n+192)] +
			x[n+256]*qmfWindow[2*(n+256)]
	}
	a.x.Retreat(32)

	var re, im [32]float32
	im[31] = u[1]
	re[0] = u[0]
	for n := 1; n < 31; n++ {
		im[31-n] = u[n+1]
		re[n] = -u[64-n]
	}
	im[0] = u[32]
	re[31] = -u[33]

	dct.Kernel(&re, &im)

	for n := 0; n < 16; n++ {
		k := 2 * n
		switch {
		case k+1 < kx:
			out[k] = complex(2*re[n], 2*im[n])
			out[k+1] = complex(-2*im[31-n], -2*re[31-n])
		case k < kx:
			out[k] = complex(2*re[n], 2*im[n])
			out[k+1] = 0
		default:
			out[k] = 0
			out[k+1] = 0
		}
	}
}
