package spectrum

import (
	"math"
	"testing"

	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

func adjustConfig(t *testing.T, frameLength int) *AdjustConfig {
	t.Helper()
	h := syntax.DefaultHeader()
	h.StartFreq, h.StopFreq = 7, 15
	return &AdjustConfig{
		Header: &h,
		Bands:  testBands(t),
		Timing: syntax.DefaultTiming(frameLength),
		Reset:  true,
	}
}

// fillHigh writes f(i, k) to every slot of the SBR range kx..kx+M-1.
func fillHigh(x *History, b *tables.Bands, f func(i, k int) complex64) {
	for i := range x.Len() {
		s := x.At(i)
		for k := b.Kx; k < b.Kx+b.M; k++ {
			s[k] = f(i, k)
		}
	}
}

// flatEnvelope returns an Envelope with energy e in every band and no
// noise.
func flatEnvelope(e float32) *Envelope {
	env := &Envelope{}
	for k := range env.EOrig {
		for l := range env.EOrig[k] {
			env.EOrig[k][l] = e
		}
	}
	for k := range env.QDiv {
		for l := range env.QDiv[k] {
			env.QDiv[k][l] = 1
		}
	}
	return env
}

func meanEnergy(x *History, k, from, to int) float32 {
	var sum float32
	for i := from; i < to; i++ {
		sum += norm(x.At(i)[k])
	}
	return sum / float32(to-from)
}

func TestAdjust_ReachesReferenceEnergy(t *testing.T) {
	for _, interpol := range []bool{true, false} {
		cfg := adjustConfig(t, 1024)
		cfg.Header.InterpolFreq = interpol
		cfg.Header.LimiterGains = 3
		b := cfg.Bands

		x := NewHistory(cfg.Timing)
		fillHigh(x, b, func(i, k int) complex64 { return complex(600, 800) })

		ch := singleEnvelope()
		a := NewAdjuster()
		a.Adjust(x, ch, flatEnvelope(4e6), cfg)

		for k := b.Kx; k < b.Kx+b.M; k++ {
			if got := meanEnergy(x, k, 2, 34); !approx(got, 4e6, 1e-4) {
				t.Errorf("interpol=%v subband %d: energy = %v, want 4e6", interpol, k, got)
			}
		}
	}
}

// resBand returns the band of table containing subband k.
func resBand(table *[tables.MaxBands + 1]int, n, k int) int {
	for j := range n {
		if table[j] <= k && k < table[j+1] {
			return j
		}
	}
	return -1
}

func TestAdjust_GainBounds(t *testing.T) {
	for gains := range 4 {
		cfg := adjustConfig(t, 1024)
		cfg.Header.LimiterGains = gains
		cfg.Header.SmoothingMode = false
		b := cfg.Bands

		x := NewHistory(cfg.Timing)
		fillHigh(x, b, func(i, k int) complex64 {
			return complex(
				float32(100*math.Sin(0.37*float64(i*k))),
				float32(50*math.Cos(0.11*float64(k)+float64(i))),
			)
		})

		ch := singleEnvelope()
		ch.Grid = syntax.Grid{
			Class: syntax.FixFix, LE: 2, LQ: 2,
			TE: [6]int{0, 16, 32}, TQ: [3]int{0, 16, 32},
			F: [5]int{tables.LoRes, tables.LoRes},
		}
		ch.AddHarmonicFlag = true
		ch.AddHarmonic[3] = true
		ch.AddHarmonic[11] = true

		env := &Envelope{}
		for k := range b.NLow {
			env.EOrig[k][0] = float32(1e4 * (k + 1))
			env.EOrig[k][1] = float32(3e5 * (k%3 + 1))
		}
		for k := range b.NQ {
			env.QDiv[k][0], env.QDiv2[k][0] = 0.5, 0.5
			env.QDiv[k][1], env.QDiv2[k][1] = 0.9, 0.1
		}

		a := NewAdjuster()
		a.Adjust(x, ch, env, cfg)

		lim := &b.FTableLim[cfg.Header.LimiterBands]
		lo := &b.FTableRes[tables.LoRes]
		for l := range ch.Grid.LE {
			for n := range b.NL[cfg.Header.LimiterBands] {
				var acc1, acc2, out float32
				for m := lim[n]; m < lim[n+1]; m++ {
					acc1 += env.EOrig[resBand(lo, b.NLow, m+b.Kx)][l]
					acc2 += a.eCurr[m][l]
				}
				gMax := min((eps+acc1)/(eps+acc2)*limiterGains[gains], maxGain)

				for m := lim[n]; m < lim[n+1]; m++ {
					g := a.gBoost[l][m]
					if g*g > gMax*maxBoost*(1+1e-5) {
						t.Errorf("gains=%d env %d subband %d: G^2 = %v exceeds %v",
							gains, l, m, g*g, gMax*maxBoost)
					}
					out += a.eCurr[m][l] * g * g
					if s := a.sBoost[l][m]; s != 0 {
						out += s * s
					} else {
						out += a.qBoost[l][m] * a.qBoost[l][m]
					}
				}

				if out > acc1*(1+1e-4)+1e-6 {
					t.Errorf("gains=%d env %d limiter band %d: output energy %v exceeds reference %v",
						gains, l, n, out, acc1)
				}
			}
		}
	}
}

func TestAdjust_NoiseStartsAfterIndex(t *testing.T) {
	cfg := adjustConfig(t, 1024)
	b := cfg.Bands
	x := NewHistory(cfg.Timing)

	env := flatEnvelope(100)
	for k := range b.NQ {
		env.QDiv[k][0], env.QDiv2[k][0] = 0.5, 0.5
	}

	a := NewAdjuster()
	a.Adjust(x, singleEnvelope(), env, cfg)

	q := a.qBoost[0][0]
	if q == 0 {
		t.Fatal("no noise level")
	}
	got := x.At(cfg.Timing.THFAdj)[b.Kx]
	want := complex(q*noiseTable[1][0], q*noiseTable[1][1])
	if !approx(real(got), real(want), 1e-5) || !approx(imag(got), imag(want), 1e-5) {
		t.Errorf("first noise sample = %v, want %v", got, want)
	}
}

func TestAdjust_IndicesCarryOver(t *testing.T) {
	cfg := adjustConfig(t, 960)
	x := NewHistory(cfg.Timing)
	ch := singleEnvelope()
	ch.Grid.TE[1], ch.Grid.TQ[1] = 30, 30

	a := NewAdjuster()
	env := flatEnvelope(1)

	steps := []struct {
		reset       bool
		noise, sine int
	}{
		{true, 960 & 511, 30 & 3},
		{false, (2 * 960) & 511, 60 & 3},
		{false, (3 * 960) & 511, 90 & 3},
		{true, 960 & 511, 120 & 3},
	}
	for i, s := range steps {
		cfg.Reset = s.reset
		a.Adjust(x, ch, env, cfg)
		if a.noiseIndex != s.noise || a.sineIndex != s.sine {
			t.Errorf("frame %d: noise, sine index = %d, %d; want %d, %d",
				i, a.noiseIndex, a.sineIndex, s.noise, s.sine)
		}
	}
}

func TestAdjust_Sinusoid(t *testing.T) {
	cfg := adjustConfig(t, 1024)
	b := cfg.Bands
	x := NewHistory(cfg.Timing)

	ch := singleEnvelope()
	ch.AddHarmonicFlag = true
	ch.AddHarmonic[11] = true // high resolution band 35..39

	a := NewAdjuster()
	a.Adjust(x, ch, flatEnvelope(1000), cfg)

	const k = 37
	for m := range b.M {
		if s := a.sBoost[0][m]; (m+b.Kx == k) != (s != 0) {
			t.Errorf("subband %d: sinusoid level %v", m+b.Kx, s)
		}
	}

	s := a.sBoost[0][k-b.Kx]
	adj := cfg.Timing.THFAdj
	want := []complex64{
		complex(s, 0),
		complex(0, -s), // odd subband flips the imaginary part
		complex(-s, 0),
		complex(0, s),
	}
	for i, w := range want {
		got := x.At(adj + i)[k]
		if !approx(real(got), real(w), 1e-5) || !approx(imag(got), imag(w), 1e-5) {
			t.Errorf("slot %d = %v, want %v", i, got, w)
		}
	}
}

func TestAdjust_Smoothing(t *testing.T) {
	cfg := adjustConfig(t, 1024)
	cfg.Header.SmoothingMode = false
	b := cfg.Bands
	adj := cfg.Timing.THFAdj
	const in = complex64(complex(3, 4))

	x := NewHistory(cfg.Timing)
	fillHigh(x, b, func(i, k int) complex64 { return in })
	ch := singleEnvelope()

	a := NewAdjuster()
	a.Adjust(x, ch, flatEnvelope(100), cfg)
	g1 := a.gBoost[0][0]

	// The history starts filled with the first gain, so the first frame
	// is not smoothed.
	if got := x.At(adj)[b.Kx]; !approx(real(got), g1*real(in), 1e-5) {
		t.Errorf("first frame = %v, want %v", got, g1*real(in))
	}

	fillHigh(x, b, func(i, k int) complex64 { return in })
	cfg.Reset = false
	a.Adjust(x, ch, flatEnvelope(1600), cfg)
	g2 := a.gBoost[0][0]

	var past float32
	for i := range 4 {
		past += smoothing[i]
	}
	wantGain := []float32{
		smoothing[4]*g2 + past*g1,
		(smoothing[3]+smoothing[4])*g2 + (past-smoothing[3])*g1,
	}
	for i, g := range wantGain {
		got := x.At(adj + i)[b.Kx]
		if !approx(real(got), g*real(in), 1e-4) || !approx(imag(got), g*imag(in), 1e-4) {
			t.Errorf("slot %d = %v, want gain %v", i, got, g)
		}
	}
}

func TestAdjuster_SavePrev(t *testing.T) {
	a := NewAdjuster()
	ch := singleEnvelope()
	ch.Grid = syntax.Grid{Class: syntax.FixVar, LE: 2, Point: 1}
	ch.AddHarmonicFlag = true
	ch.AddHarmonic[4] = true

	a.SavePrev(ch)
	if a.prevEnvIsShort != 0 {
		t.Errorf("prevEnvIsShort = %d, want 0", a.prevEnvIsShort)
	}
	if !a.addHarmonicFlagPrev || !a.addHarmonicPrev[4] {
		t.Error("harmonics not kept")
	}

	ch.Grid.Point = 0
	a.SavePrev(ch)
	if a.prevEnvIsShort != -1 {
		t.Errorf("prevEnvIsShort = %d, want -1", a.prevEnvIsShort)
	}

	a.Reset()
	if a.addHarmonicFlagPrev || a.addHarmonicPrev[4] || a.noiseIndex != 0 {
		t.Error("Reset kept history")
	}
}
