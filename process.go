package sbr

import (
	"github.com/llehouerou/go-sbr/internal/spectrum"
	"github.com/llehouerou/go-sbr/internal/syntax"
)

// Process runs the QMF analysis, HF generation and adjustment and synthesis
// for the frame last read by Parse. in holds FrameLength core samples per
// coded channel; out receives OutputLength samples per output channel.
// Samples are in the 16-bit range.
//
// Frames without valid SBR data are passed through: the output is the
// resampled core signal with an empty high band.
func (d *Decoder) Process(in, out [][]float32) error {
	if err := d.checkBuffers(in, out); err != nil {
		return err
	}

	tm := d.timing
	dontProcess := !d.parsed || d.errCount != 0 || d.bands == nil
	d.parsed = false

	for ch := range d.coded {
		d.processChannel(ch, in[ch], dontProcess)
	}

	if d.config.Stereo != nil {
		left, right := d.channels[0], d.channels[1]
		if d.psUsed {
			d.config.Stereo.Apply(left.x, right.x)
		} else {
			copy(right.x, left.x)
		}
	}
	for ch, c := range d.channels {
		c.synthesis.Process(c.x, out[ch][:d.OutputLength()])
	}

	if d.headerFlag {
		d.justSeeked = false
	}
	if !dontProcess && d.errCount == 0 {
		d.savePrev()
	}
	for ch := range d.coded {
		d.channels[ch].slide(tm)
	}
	return nil
}

func (d *Decoder) checkBuffers(in, out [][]float32) error {
	if len(in) != d.coded || len(out) != d.Channels() {
		return ErrElementMismatch
	}
	for _, s := range in {
		if len(s) < d.config.FrameLength {
			return ErrShortBuffer
		}
	}
	for _, s := range out {
		if len(s) < d.OutputLength() {
			return ErrShortBuffer
		}
	}
	return nil
}

// processChannel fills the synthesis input of channel ch from its core
// samples.
func (d *Decoder) processChannel(ch int, in []float32, dontProcess bool) {
	c := d.channels[ch]
	data := &d.element.Channels[ch]
	tm := d.timing

	kx := 32
	if !dontProcess {
		kx = d.bands.Kx
	}
	c.analysis.Process(in[:d.config.FrameLength], c.history, tm.THFGen, kx)

	passThrough := dontProcess || d.justSeeked
	if !dontProcess {
		if d.validGrid(&data.Grid) {
			d.adjust.Bands = d.bands
			d.adjust.Reset = d.reset
			spectrum.Generate(c.history, data, &c.chirp, d.bands, tm)
			c.adjuster.Adjust(c.history, data, &c.env, &d.adjust)
		} else {
			d.fail(ErrChannelProcessingFailure)
			passThrough = true
		}
	}

	adj := tm.THFAdj
	for l := range c.x {
		n := 32
		if !passThrough {
			if l < data.Grid.TE[0] {
				n = d.kxPrev + d.mPrev
			} else {
				n = d.bands.Kx + d.bands.M
			}
		}
		dst := &c.x[l]
		copy(dst[:n], c.history.At(l + adj)[:n])
		clear(dst[n:])
	}
}

// validGrid reports whether the envelopes of g lie inside the spectral
// history.
func (d *Decoder) validGrid(g *syntax.Grid) bool {
	if g.LE < 1 || g.LE > syntax.MaxEnvelopes {
		return false
	}
	return g.TE[g.LE]+d.timing.THFAdj <= d.channels[0].history.Len()
}
