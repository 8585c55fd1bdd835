package syntax

import (
	"github.com/llehouerou/go-sbr/internal/huffman"
	"github.com/llehouerou/go-sbr/internal/tables"
)

// Channel holds the decoded SBR data of one channel: its grid, the
// quantised envelope and noise floor values and the sinusoid flags, plus
// the last column of the previous frame needed for time-differential
// decoding.
type Channel struct {
	Grid Grid

	AmpRes  bool // effective amplitude resolution for this frame
	DFEnv   [MaxEnvelopes]bool
	DFNoise [MaxNoiseFloors]bool

	InvfMode [MaxNoiseBands]InvfMode

	E [MaxBands][MaxEnvelopes]int   // envelope scalefactors [band][envelope]
	Q [MaxBands][MaxNoiseFloors]int // noise floor values [band][floor]

	AddHarmonicFlag bool
	AddHarmonic     [MaxBands]bool

	EPrev [MaxBands]int
	QPrev [MaxBands]int
	FPrev int
}

// parseDTDF reads sbr_dtdf(): one delta direction bit per envelope and per
// noise floor.
func (c *Channel) parseDTDF(r BitReader) {
	for l := range c.Grid.LE {
		c.DFEnv[l] = r.ReadBool()
	}
	for l := range c.Grid.LQ {
		c.DFNoise[l] = r.ReadBool()
	}
}

func (c *Channel) parseInvf(r BitReader, b *tables.Bands) {
	for n := range b.NQ {
		c.InvfMode[n] = InvfMode(r.ReadBits(2))
	}
}

// parseEnvelope reads sbr_envelope() and resolves the deltas. balance is set
// for the second channel of a coupled pair, whose values are balance data
// stored in doubled units.
// Source: ISO/IEC 14496-3, 4.4.2.8 sbr_envelope()
func (c *Channel) parseEnvelope(r BitReader, h *Header, b *tables.Bands, balance bool) {
	g := &c.Grid

	// A single FixFix envelope is always coded at 1.5 dB.
	c.AmpRes = h.AmpRes
	if g.LE == 1 && g.Class == FixFix {
		c.AmpRes = false
	}

	var shift uint
	startBits := uint(7)
	if balance {
		shift = 1
		startBits = 6
	}
	if c.AmpRes {
		startBits--
	}
	tHuff, fHuff := huffman.Envelope(balance, c.AmpRes)

	for l := range g.LE {
		n := b.N[g.F[l]]
		if !c.DFEnv[l] {
			c.E[0][l] = int(r.ReadBits(startBits)) << shift
			for k := 1; k < n; k++ {
				c.E[k][l] = huffman.Decode(r, fHuff) << shift
			}
		} else {
			for k := range n {
				c.E[k][l] = huffman.Decode(r, tHuff) << shift
			}
		}
	}

	c.extractEnvelope(b)
}

// extractEnvelope turns the envelope deltas into absolute values.
// Source: ISO/IEC 14496-3, 4.6.18.3.5 (delta decoding)
func (c *Channel) extractEnvelope(b *tables.Bands) {
	g := &c.Grid
	hi := &b.FTableRes[tables.HiRes]
	lo := &b.FTableRes[tables.LoRes]

	prev := func(k, l int) int {
		if l == 0 {
			return c.EPrev[k]
		}
		return c.E[k][l-1]
	}

	for l := range g.LE {
		f := g.F[l]
		n := b.N[f]

		if !c.DFEnv[l] {
			for k := 1; k < n; k++ {
				c.E[k][l] += c.E[k-1][l]
				if c.E[k][l] < 0 {
					c.E[k][l] = 0
				}
			}
			continue
		}

		pf := c.FPrev
		if l > 0 {
			pf = g.F[l-1]
		}

		switch {
		case f == pf:
			for k := range n {
				c.E[k][l] += prev(k, l)
			}
		case pf == tables.HiRes && f == tables.LoRes:
			for k := range n {
				for i := range b.NHigh {
					if hi[i] == lo[k] {
						c.E[k][l] += prev(i, l)
					}
				}
			}
		case pf == tables.LoRes && f == tables.HiRes:
			for k := range n {
				for i := range b.NLow {
					if lo[i] <= hi[k] && hi[k] < lo[i+1] {
						c.E[k][l] += prev(i, l)
					}
				}
			}
		}
	}
}

// parseNoise reads sbr_noise() and resolves the deltas.
// Source: ISO/IEC 14496-3, 4.4.2.8 sbr_noise()
func (c *Channel) parseNoise(r BitReader, b *tables.Bands, balance bool) {
	var shift uint
	if balance {
		shift = 1
	}
	tHuff, fHuff := huffman.Noise(balance)

	for l := range c.Grid.LQ {
		if !c.DFNoise[l] {
			c.Q[0][l] = int(r.ReadBits(5)) << shift
			for k := 1; k < b.NQ; k++ {
				c.Q[k][l] = huffman.Decode(r, fHuff) << shift
			}
		} else {
			for k := range b.NQ {
				c.Q[k][l] = huffman.Decode(r, tHuff) << shift
			}
		}
	}

	c.extractNoise(b)
}

func (c *Channel) extractNoise(b *tables.Bands) {
	for l := range c.Grid.LQ {
		switch {
		case !c.DFNoise[l]:
			for k := 1; k < b.NQ; k++ {
				c.Q[k][l] += c.Q[k-1][l]
			}
		case l == 0:
			for k := range b.NQ {
				c.Q[k][l] += c.QPrev[k]
			}
		default:
			for k := range b.NQ {
				c.Q[k][l] += c.Q[k][l-1]
			}
		}
	}
}

// parseHarmonics reads the bs_add_harmonic flag and, when set,
// sinusoidal_coding().
func (c *Channel) parseHarmonics(r BitReader, b *tables.Bands) {
	c.AddHarmonic = [MaxBands]bool{}
	c.AddHarmonicFlag = r.ReadBool()
	if !c.AddHarmonicFlag {
		return
	}
	for n := range b.NHigh {
		c.AddHarmonic[n] = r.ReadBool()
	}
}

// SavePrev keeps the last envelope and noise floor columns for the next
// frame's time-differential decoding.
func (c *Channel) SavePrev(b *tables.Bands) {
	g := &c.Grid
	if g.LE == 0 {
		return
	}
	le := g.LE - 1
	for k := range b.N[g.F[le]] {
		c.EPrev[k] = c.E[k][le]
	}
	lq := g.LQ - 1
	for k := range b.NQ {
		c.QPrev[k] = c.Q[k][lq]
	}
	c.FPrev = g.F[le]
}

// ResetHistory clears everything carried over from previous frames.
func (c *Channel) ResetHistory() {
	c.EPrev = [MaxBands]int{}
	c.QPrev = [MaxBands]int{}
	c.FPrev = 0
}
