package filterbank

import (
	"math"

	"github.com/llehouerou/go-sbr/internal/dct"
	"github.com/llehouerou/go-sbr/internal/fft"
	"github.com/llehouerou/go-sbr/internal/ring"
)

const synthesisScale = 1.0 / 64

// Window tap offsets into the doubled history, per band count.
var (
	offsets64 = [10]int{0, 192, 256, 448, 512, 704, 768, 960, 1024, 1216}
	offsets32 = [10]int{0, 96, 128, 224, 256, 352, 384, 480, 512, 608}
)

// Pre-twiddle of the 32-band bank: angle pi*(2k+1)/256.
var twiddle32Cos, twiddle32Sin [32]float32

func init() {
	for k := range twiddle32Cos {
		a := math.Pi * float64(2*k+1) / 256
		twiddle32Cos[k] = float32(math.Cos(a))
		twiddle32Sin[k] = float32(math.Sin(a))
	}
}

// Synthesis is a complex synthesis QMF bank with 64 bands, or 32 bands in
// down-sampled mode. The band count is fixed at construction.
type Synthesis struct {
	bands int
	v     *ring.Mirror[float32]
}

// NewSynthesis returns a synthesis bank with the given number of bands,
// 32 or 64.
func NewSynthesis(bands int) *Synthesis {
	if bands != 32 && bands != 64 {
		panic("filterbank: synthesis bands must be 32 or 64")
	}
	return &Synthesis{bands: bands, v: ring.NewMirror[float32](20 * bands)}
}

// Bands returns the number of output samples per slot.
func (s *Synthesis) Bands() int { return s.bands }

// Reset clears the synthesis history.
func (s *Synthesis) Reset() {
	s.v.Reset()
}

// Process synthesises one block of Bands() samples per slot of x into out.
// out must hold len(x)*Bands() samples.
func (s *Synthesis) Process(x []Slot, out []float32) {
	for l := range x {
		o := out[l*s.bands : (l+1)*s.bands]
		if s.bands == 64 {
			s.slot64(&x[l], o)
		} else {
			s.slot32(&x[l], o)
		}
	}
}

// Source: ISO/IEC 14496-3, 4.6.18.4.2 (synthesis filterbank)
func (s *Synthesis) slot64(x *Slot, out []float32) {
	var re1, im1, re2, im2 [32]float32
	for k := 0; k < 32; k++ {
		re1[k] = synthesisScale * real(x[2*k])
		im1[31-k] = synthesisScale * real(x[2*k+1])
		re2[k] = synthesisScale * imag(x[63-2*k])
		im2[31-k] = synthesisScale * imag(x[62-2*k])
	}

	dct.Kernel(&re1, &im1)
	dct.Kernel(&re2, &im2)

	for n := 0; n < 32; n++ {
		s.v.Put(2*n, re2[n]-re1[n])
		s.v.Put(127-2*n, re2[n]+re1[n])
		s.v.Put(2*n+1, im2[31-n]+im1[31-n])
		s.v.Put(126-2*n, im2[31-n]-im1[31-n])
	}

	v := s.v.View()
	for k := 0; k < 64; k++ {
		var acc float32
		for j, off := range offsets64 {
			acc += v[k+off] * qmfWindow[k+64*j]
		}
		out[k] = acc
	}
	s.v.Retreat(128)
}

// Source: ISO/IEC 14496-3, 4.6.18.4.3 (downsampled synthesis filterbank)
func (s *Synthesis) slot32(x *Slot, out []float32) {
	var x1, x2 [32]float32
	for k := 0; k < 32; k++ {
		r, i := fft.ComplexMult(real(x[k]), imag(x[k]), twiddle32Cos[k], twiddle32Sin[k])
		x1[k] = r * synthesisScale
		x2[k] = i * synthesisScale
	}

	dct.DCTIV32(&x1)
	dct.DSTIV32(&x2)

	for n := 0; n < 32; n++ {
		s.v.Put(n, x2[n]-x1[n])
		s.v.Put(63-n, x2[n]+x1[n])
	}

	v := s.v.View()
	for k := 0; k < 32; k++ {
		var acc float32
		for j, off := range offsets32 {
			acc += v[k+off] * qmfWindow[64*j+2*k]
		}
		out[k] = acc
	}
	s.v.Retreat(64)
}
