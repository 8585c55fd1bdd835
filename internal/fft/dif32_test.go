package fft

import (
	"math"
	"math/rand"
	"testing"

	algofft "github.com/cwbudde/algo-fft"
)

func TestBitReverse_IsPermutation(t *testing.T) {
	var seen [Size]bool
	for k, r := range BitReverse {
		if seen[r] {
			t.Fatalf("index %d repeated", r)
		}
		seen[r] = true
		if BitReverse[r] != k {
			t.Errorf("BitReverse is not an involution at %d", k)
		}
	}
}

func TestDIF32_Impulse(t *testing.T) {
	var re, im [Size]float32
	re[0] = 1
	DIF32(&re, &im)
	for k := 0; k < Size; k++ {
		if re[k] != 1 || im[k] != 0 {
			t.Fatalf("bin %d = (%v, %v), want (1, 0)", k, re[k], im[k])
		}
	}
}

func TestDIF32_MatchesReferenceFFT(t *testing.T) {
	plan, err := algofft.NewPlan64(Size)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 8; trial++ {
		var re, im [Size]float32
		src := make([]complex128, Size)
		for i := range src {
			re[i] = float32(rng.Float64()*2 - 1)
			im[i] = float32(rng.Float64()*2 - 1)
			src[i] = complex(float64(re[i]), float64(im[i]))
		}

		dst := make([]complex128, Size)
		if err := plan.Forward(dst, src); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		DIF32(&re, &im)
		for k := 0; k < Size; k++ {
			r := BitReverse[k]
			dr := float64(re[r]) - real(dst[k])
			di := float64(im[r]) - imag(dst[k])
			if math.Hypot(dr, di) > 1e-4 {
				t.Errorf("trial %d bin %d: got (%v, %v), want %v", trial, k, re[r], im[r], dst[k])
			}
		}
	}
}
