package fft

import "math"

// Size is the transform length of DIF32.
const Size = 32

// BitReverse maps natural order to the output order of DIF32.
var BitReverse = [Size]int{
	0, 16, 8, 24, 4, 20, 12, 28, 2, 18, 10, 26, 6, 22, 14, 30,
	1, 17, 9, 25, 5, 21, 13, 29, 3, 19, 11, 27, 7, 23, 15, 31,
}

// twiddle holds exp(-2*pi*i*k/32) for k < 16.
var twiddleRe, twiddleIm = makeTwiddle()

func makeTwiddle() (re, im [Size / 2]float32) {
	for k := range re {
		a := 2 * math.Pi * float64(k) / Size
		re[k] = float32(math.Cos(a))
		im[k] = float32(-math.Sin(a))
	}
	return re, im
}

// DIF32 computes the forward 32-point DFT of (re, im) in place using
// radix-2 decimation in frequency. The result is left in bit-reversed
// order: bin k is found at index BitReverse[k].
func DIF32(re, im *[Size]float32) {
	for half := Size / 2; half > 1; half >>= 1 {
		step := (Size / 2) / half
		for base := 0; base < Size; base += 2 * half {
			for j := 0; j < half; j++ {
				wr, wi := twiddleRe[j*step], twiddleIm[j*step]
				i, i2 := base+j, base+j+half

				dr := re[i] - re[i2]
				di := im[i] - im[i2]
				re[i] += re[i2]
				im[i] += im[i2]
				re[i2] = dr*wr - di*wi
				im[i2] = dr*wi + di*wr
			}
		}
	}

	// Last stage: twiddle is always 1.
	for i := 0; i < Size; i += 2 {
		dr := re[i] - re[i+1]
		di := im[i] - im[i+1]
		re[i] += re[i+1]
		im[i] += im[i+1]
		re[i+1] = dr
		im[i+1] = di
	}
}
