package tables

import "fmt"

// Frequency resolutions, used to index Bands.FTableRes and Bands.N.
const (
	LoRes = 0
	HiRes = 1
)

// MaxPatches is the largest number of HF patches.
const MaxPatches = 5

// Params are the SBR header fields that determine the band tables.
type Params struct {
	StartFreq      int
	StopFreq       int
	SamplerateMode bool
	FreqScale      int
	AlterScale     bool
	XoverBand      int
	NoiseBands     int
}

// Bands holds every frequency table of one SBR configuration. Borders are
// QMF channel numbers; the limiter tables are relative to Kx.
type Bands struct {
	K0, K2 int // first channel and channel past the top of the master table
	Kx, M  int // first SBR channel and number of SBR channels

	NMaster int
	FMaster [MaxBands + 1]int

	NHigh, NLow int
	N           [2]int // NLow and NHigh by resolution
	FTableRes   [2][MaxBands + 1]int

	NQ          int
	FTableNoise [6]int
	MapKToG     [64]int

	NL        [4]int
	FTableLim [4][MaxBands + 1]int

	NumPatches        int
	PatchNumSubbands  [MaxPatches]int
	PatchStartSubband [MaxPatches]int
}

// Derive computes all tables for the given header fields at an SBR sample
// rate. Any failure leaves no partial result.
func Derive(p Params, sampleRate uint32) (*Bands, error) {
	b := &Bands{}
	b.K0 = StartChannel(p.StartFreq, p.SamplerateMode, sampleRate)
	b.K2 = StopChannel(p.StopFreq, sampleRate, b.K0)

	if b.K2-b.K0 > maxSpan(sampleRate) {
		return nil, fmt.Errorf("k0=%d k2=%d at %d Hz: %w", b.K0, b.K2, sampleRate, ErrSpan)
	}

	var master []int
	var err error
	if p.FreqScale == 0 {
		master, err = MasterFrequencyTableFs0(b.K0, b.K2, p.AlterScale)
	} else {
		master, err = MasterFrequencyTable(b.K0, b.K2, p.FreqScale, p.AlterScale)
	}
	if err != nil {
		return nil, fmt.Errorf("k0=%d k2=%d scale=%d: %w", b.K0, b.K2, p.FreqScale, err)
	}
	b.NMaster = len(master) - 1
	copy(b.FMaster[:], master)

	if err := b.derive(p.XoverBand, p.NoiseBands); err != nil {
		return nil, err
	}
	if err := b.buildPatches(sampleRate); err != nil {
		return nil, err
	}
	b.buildLimiterTables()
	return b, nil
}

// derive builds the high/low resolution tables, the noise table and the
// channel to noise band map from the master table.
// Source: ISO/IEC 14496-3, 4.6.18.3.2.2 (derived frequency band tables)
func (b *Bands) derive(xoverBand, noiseBands int) error {
	if xoverBand >= b.NMaster {
		return fmt.Errorf("xover band %d of %d: %w", xoverBand, b.NMaster, ErrDerivedTable)
	}

	b.NHigh = b.NMaster - xoverBand
	b.NLow = (b.NHigh + 1) >> 1
	b.N = [2]int{b.NLow, b.NHigh}

	hi := &b.FTableRes[HiRes]
	for k := 0; k <= b.NHigh; k++ {
		hi[k] = b.FMaster[k+xoverBand]
	}

	b.Kx = hi[0]
	b.M = hi[b.NHigh] - hi[0]
	if b.Kx > 32 || b.Kx+b.M > 64 {
		return fmt.Errorf("kx=%d M=%d: %w", b.Kx, b.M, ErrDerivedTable)
	}

	minus := b.NHigh & 1
	lo := &b.FTableRes[LoRes]
	lo[0] = hi[0]
	for k := 1; k <= b.NLow; k++ {
		lo[k] = hi[2*k-minus]
	}

	b.NQ = 1
	if noiseBands != 0 {
		b.NQ = min(5, max(1, findBands(false, noiseBands, b.Kx, b.K2)))
	}

	i := 0
	for k := 0; k <= b.NQ; k++ {
		if k > 0 {
			i += (b.NLow - i) / (b.NQ + 1 - k)
		}
		b.FTableNoise[k] = lo[i]
	}

	for k := range b.MapKToG {
		for g := 0; g < b.NQ; g++ {
			if b.FTableNoise[g] <= k && k < b.FTableNoise[g+1] {
				b.MapKToG[k] = g
				break
			}
		}
	}
	return nil
}
