// Package fft implements the fixed-size complex FFT used by the SBR
// DCT-IV kernel.
package fft

// ComplexMult multiplies (x1, x2) by the rotation (c1, c2):
//
//	y1 = x1*c1 + x2*c2
//	y2 = x2*c1 - x1*c2
//
// With c1 = cos(a) and c2 = sin(a) this is a rotation by -a.
func ComplexMult(x1, x2, c1, c2 float32) (y1, y2 float32) {
	y1 = x1*c1 + x2*c2
	y2 = x2*c1 - x1*c2
	return
}
