package spectrum

import (
	"math"

	"github.com/llehouerou/go-sbr/internal/ring"
	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

const (
	eps      = 1e-12
	maxGain  = 1e10
	maxBoost = 2.51188643 // 1.584893192^2
)

// limiterGains are the maximum gains selected by bs_limiter_gains.
var limiterGains = [4]float32{0.5, 1, 2, 1e10}

// smoothing is the FIR applied to gains and noise levels, oldest first.
var smoothing = [5]float32{
	0.03183050093751, 0.11516383427084, 0.21816949906249,
	0.30150283239582, 0.33333333333333,
}

// Sinusoid phases, advanced once per slot.
var (
	phiRe = [4]float32{1, 0, -1, 0}
	phiIm = [4]float32{0, 1, 0, -1}
)

type gainRow = [syntax.MaxBands]float32

// AdjustConfig holds the frame-level inputs of HF adjustment.
type AdjustConfig struct {
	Header *syntax.Header
	Bands  *tables.Bands
	Timing syntax.Timing

	// Reset is set on the first frame after the frequency tables changed;
	// it restarts the smoothing history and the noise sequence.
	Reset bool
}

// Adjuster carries the HF adjustment state of one channel between frames.
type Adjuster struct {
	gSmooth *ring.Buffer[gainRow]
	qSmooth *ring.Buffer[gainRow]

	noiseIndex int
	sineIndex  int

	// prevEnvIsShort is 0 when the last envelope of the previous frame was
	// the transient one, -1 otherwise.
	prevEnvIsShort int

	addHarmonicPrev     [syntax.MaxBands]bool
	addHarmonicFlagPrev bool

	// per-frame scratch
	eCurr    [syntax.MaxBands][syntax.MaxEnvelopes]float32
	gBoost   [syntax.MaxEnvelopes]gainRow
	qBoost   [syntax.MaxEnvelopes]gainRow
	sBoost   [syntax.MaxEnvelopes]gainRow
	limitedQ gainRow
	limitedG gainRow
	sinus    gainRow
}

// NewAdjuster returns an Adjuster in its reset state.
func NewAdjuster() *Adjuster {
	a := &Adjuster{
		gSmooth: ring.New[gainRow](len(smoothing)),
		qSmooth: ring.New[gainRow](len(smoothing)),
	}
	a.Reset()
	return a
}

// Reset clears all state carried between frames.
func (a *Adjuster) Reset() {
	a.gSmooth.Reset()
	a.qSmooth.Reset()
	a.noiseIndex = 0
	a.sineIndex = 0
	a.prevEnvIsShort = -1
	a.addHarmonicPrev = [syntax.MaxBands]bool{}
	a.addHarmonicFlagPrev = false
}

// Adjust shapes the generated high band of the current frame to the
// transmitted envelope, then adds noise and sinusoids.
func (a *Adjuster) Adjust(x *History, ch *syntax.Channel, env *Envelope, cfg *AdjustConfig) {
	la := ch.Grid.Transient()

	a.estimateEnvelope(x, ch, cfg)
	a.calculateGain(ch, env, cfg.Bands, cfg.Header, la)
	a.assemble(x, ch, cfg, la)
}

// SavePrev keeps what the next frame needs from this one.
func (a *Adjuster) SavePrev(ch *syntax.Channel) {
	a.addHarmonicPrev = ch.AddHarmonic
	a.addHarmonicFlagPrev = ch.AddHarmonicFlag
	if ch.Grid.Transient() == ch.Grid.LE {
		a.prevEnvIsShort = 0
	} else {
		a.prevEnvIsShort = -1
	}
}

// estimateEnvelope measures the mean energy of the generated high band per
// envelope, either per QMF subband or averaged over each resolution band.
// Source: ISO/IEC 14496-3, 4.6.18.7.3 (estimation of current envelope)
func (a *Adjuster) estimateEnvelope(x *History, ch *syntax.Channel, cfg *AdjustConfig) {
	g := &ch.Grid
	b := cfg.Bands
	adj := cfg.Timing.THFAdj

	for l := range g.LE {
		lo, hi := g.TE[l], g.TE[l+1]

		if cfg.Header.InterpolFreq {
			div := float32(hi - lo)
			if div == 0 {
				div = 1
			}
			for m := range b.M {
				var nrg float32
				for i := lo + adj; i < hi+adj; i++ {
					nrg += norm(x.At(i)[m+b.Kx])
				}
				a.eCurr[m][l] = nrg / div
			}
			continue
		}

		table := &b.FTableRes[g.F[l]]
		for p := range b.N[g.F[l]] {
			kl, kh := table[p], table[p+1]
			div := float32((hi - lo) * (kh - kl))
			if div == 0 {
				div = 1
			}

			var nrg float32
			for i := lo + adj; i < hi+adj; i++ {
				s := x.At(i)
				for j := kl; j < kh; j++ {
					nrg += norm(s[j])
				}
			}
			for k := kl; k < kh; k++ {
				a.eCurr[k-b.Kx][l] = nrg / div
			}
		}
	}
}

// harmonicActive reports whether the sinusoid flag of high resolution band
// n may be used in envelope l: from the transient envelope on, or earlier
// when the previous frame already had a sinusoid there.
func (a *Adjuster) harmonicActive(l, la, n int) bool {
	return l >= la || (a.addHarmonicPrev[n] && a.addHarmonicFlagPrev)
}

// sinusoidMapped reports whether resolution band band of envelope l
// contains an added sinusoid.
func (a *Adjuster) sinusoidMapped(ch *syntax.Channel, b *tables.Bands, l, la, band int) bool {
	if ch.Grid.F[l] == tables.HiRes {
		return a.harmonicActive(l, la, band) && ch.AddHarmonic[band]
	}

	// A low resolution band spans two high resolution bands, one for the
	// first band when NHigh is odd.
	odd := b.NHigh & 1
	lb := max(2*band-odd, 0)
	ub := 2*(band+1) - odd
	for n := lb; n < ub; n++ {
		if a.harmonicActive(l, la, n) && ch.AddHarmonic[n] {
			return true
		}
	}
	return false
}

// calculateGain derives per-subband gains, noise levels and sinusoid
// levels, limited per limiter band and compensated by a bounded boost.
// Source: ISO/IEC 14496-3, 4.6.18.7.4 (calculation of gains)
func (a *Adjuster) calculateGain(ch *syntax.Channel, env *Envelope, b *tables.Bands, h *syntax.Header, la int) {
	g := &ch.Grid
	hi := &b.FTableRes[tables.HiRes]
	lim := &b.FTableLim[h.LimiterBands]
	limGain := limiterGains[h.LimiterGains]
	kx := b.Kx

	// Subbands outside every limiter band get no gain.
	clear(a.gBoost[:])
	clear(a.qBoost[:])
	clear(a.sBoost[:])

	noiseFloor := 0
	for l := range g.LE {
		res := &b.FTableRes[g.F[l]]
		noiseBand := 0
		resBand := 0
		resBand2 := 0
		hiBand := 0

		noDelta := l == la || l == a.prevEnvIsShort
		sMapped := a.sinusoidMapped(ch, b, l, la, resBand2)

		if g.TE[l+1] > g.TQ[noiseFloor+1] {
			noiseFloor++
		}

		for k := range b.NL[h.LimiterBands] {
			ml1 := min(lim[k], syntax.MaxBands)
			ml2 := min(lim[k+1], syntax.MaxBands)

			var acc1, acc2 float32
			for m := ml1; m < ml2; m++ {
				if m+kx == res[resBand+1] {
					resBand++
				}
				acc1 += env.EOrig[resBand][l]
				acc2 += a.eCurr[m][l]
			}

			gMax := (eps + acc1) / (eps + acc2) * limGain
			gMax = min(gMax, maxGain)

			var den float32
			for m := ml1; m < ml2; m++ {
				if m+kx == b.FTableNoise[noiseBand+1] {
					noiseBand++
				}
				if m+kx == res[resBand2+1] {
					resBand2++
					sMapped = a.sinusoidMapped(ch, b, l, la, resBand2)
				}
				if m+kx == hi[hiBand+1] {
					hiBand++
				}

				// A sinusoid sits in the middle subband of its high
				// resolution band.
				sIndexMapped := false
				if a.harmonicActive(l, la, hiBand) && m+kx == (hi[hiBand+1]+hi[hiBand])>>1 {
					sIndexMapped = ch.AddHarmonic[hiBand]
				}

				qDiv := env.QDiv[noiseBand][noiseFloor]
				qDiv2 := env.QDiv2[noiseBand][noiseFloor]
				eOrig := env.EOrig[resBand2][l]

				qM := eOrig * qDiv2

				a.sinus[m] = 0
				if sIndexMapped {
					a.sinus[m] = eOrig * qDiv
					den += a.sinus[m]
				}

				gain := eOrig / (1 + a.eCurr[m][l])
				switch {
				case sMapped:
					gain *= qDiv2
				case !noDelta:
					gain *= qDiv
				}

				if gMax > gain {
					a.limitedQ[m] = qM
					a.limitedG[m] = gain
				} else {
					a.limitedQ[m] = qM * gMax / gain
					a.limitedG[m] = gMax
				}

				den += a.eCurr[m][l] * a.limitedG[m]
				if !sIndexMapped && l != la {
					den += a.limitedQ[m]
				}
			}

			boost := (acc1 + eps) / (den + eps)
			boost = min(boost, maxBoost)

			for m := ml1; m < ml2; m++ {
				a.gBoost[l][m] = sqrt32(a.limitedG[m] * boost)
				a.qBoost[l][m] = sqrt32(a.limitedQ[m] * boost)
				if a.sinus[m] != 0 {
					a.sBoost[l][m] = sqrt32(a.sinus[m] * boost)
				} else {
					a.sBoost[l][m] = 0
				}
			}
		}
	}
}

// assemble applies the smoothed gains to the high band and adds the noise
// floor and the sinusoids.
// Source: ISO/IEC 14496-3, 4.6.18.7.5 (assembling HF signals)
func (a *Adjuster) assemble(x *History, ch *syntax.Channel, cfg *AdjustConfig, la int) {
	g := &ch.Grid
	b := cfg.Bands
	adj := cfg.Timing.THFAdj

	reset := cfg.Reset
	if reset {
		a.noiseIndex = 0
	}

	for l := range g.LE {
		noNoise := l == la || l == a.prevEnvIsShort
		smooth := !cfg.Header.SmoothingMode && !noNoise

		if reset {
			for n := range a.gSmooth.Len() {
				*a.gSmooth.At(n) = a.gBoost[l]
				*a.qSmooth.At(n) = a.qBoost[l]
			}
			reset = false
		}

		for i := g.TE[l]; i < g.TE[l+1]; i++ {
			*a.gSmooth.At(0) = a.gBoost[l]
			*a.qSmooth.At(0) = a.qBoost[l]

			s := x.At(i + adj)
			for m := range b.M {
				var gFilt, qFilt float32
				if smooth {
					for n, h := range smoothing {
						gFilt += a.gSmooth.At(n + 1)[m] * h
						qFilt += a.qSmooth.At(n + 1)[m] * h
					}
				} else {
					gFilt = a.gSmooth.At(0)[m]
					qFilt = a.qSmooth.At(0)[m]
				}

				sine := a.sBoost[l][m]
				if sine != 0 || noNoise {
					qFilt = 0
				}

				a.noiseIndex = (a.noiseIndex + 1) & 511
				v := noiseTable[a.noiseIndex]

				k := m + b.Kx
				re := gFilt*real(s[k]) + qFilt*v[0]
				im := gFilt*imag(s[k]) + qFilt*v[1]

				rev := float32(1)
				if k&1 != 0 {
					rev = -1
				}
				re += sine * phiRe[a.sineIndex]
				im += rev * sine * phiIm[a.sineIndex]

				s[k] = complex(re, im)
			}

			a.sineIndex = (a.sineIndex + 1) & 3
			a.gSmooth.Advance(1)
			a.qSmooth.Advance(1)
		}
	}
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
