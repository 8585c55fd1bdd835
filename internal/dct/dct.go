// Package dct implements the type-IV cosine and sine transforms used by the
// SBR QMF filter banks.
//
// The 64-point DCT-IV is computed with a 32-point complex FFT wrapped in
// pre and post rotations. The 32-point transforms of the down-sampled
// synthesis bank are small enough to be evaluated directly.
package dct

import (
	"math"

	"github.com/llehouerou/go-sbr/internal/fft"
)

// Rotation tables for Kernel. Entry n of the pre rotation has angle
// pi*(4n+1)/256, entry n of the post rotation pi*n/64. Both rotate clockwise.
var (
	preCos, preSin   [fft.Size]float32
	postCos, postSin [fft.Size]float32
)

// cos32 and sin32 hold the DCT-IV and DST-IV bases for 32 points,
// indexed [k][n].
var cos32, sin32 [32][32]float32

func init() {
	for i := 0; i < fft.Size; i++ {
		a := math.Pi * float64(4*i+1) / 256
		preCos[i] = float32(math.Cos(a))
		preSin[i] = float32(math.Sin(a))

		b := math.Pi * float64(i) / 64
		postCos[i] = float32(math.Cos(b))
		postSin[i] = float32(math.Sin(b))
	}

	for k := 0; k < 32; k++ {
		for n := 0; n < 32; n++ {
			a := math.Pi / 32 * (float64(n) + 0.5) * (float64(k) + 0.5)
			cos32[k][n] = float32(math.Cos(a))
			sin32[k][n] = float32(math.Sin(a))
		}
	}
}

// Kernel is the complex core of the 64-point DCT-IV. It transforms the
// packed input in place:
//
//	re[n] = x[2n], im[n] = x[63-2n]
//
// into
//
//	re[k] = X[2k], im[k] = -X[63-2k]
//
// where X is the unscaled DCT-IV of x.
func Kernel(re, im *[fft.Size]float32) {
	for i := 0; i < fft.Size; i++ {
		re[i], im[i] = fft.ComplexMult(re[i], im[i], preCos[i], preSin[i])
	}

	fft.DIF32(re, im)

	var outRe, outIm [fft.Size]float32
	for i := 0; i < fft.Size; i++ {
		r := fft.BitReverse[i]
		outRe[i], outIm[i] = fft.ComplexMult(re[r], im[r], postCos[i], postSin[i])
	}
	*re = outRe
	*im = outIm
}

// DCTIV32 computes the unscaled 32-point DCT-IV of x in place.
func DCTIV32(x *[32]float32) {
	transform32(x, &cos32)
}

// DSTIV32 computes the unscaled 32-point DST-IV of x in place.
func DSTIV32(x *[32]float32) {
	transform32(x, &sin32)
}

func transform32(x *[32]float32, basis *[32][32]float32) {
	var out [32]float32
	for k := range out {
		var acc float32
		row := &basis[k]
		for n, v := range x {
			acc += v * row[n]
		}
		out[k] = acc
	}
	*x = out
}
