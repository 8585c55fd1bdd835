package sbr

import (
	"github.com/llehouerou/go-sbr/internal/filterbank"
	"github.com/llehouerou/go-sbr/internal/spectrum"
	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

// channel is the decode context of one output channel. Nothing in it is
// shared with the other channel.
type channel struct {
	analysis  *filterbank.Analysis
	synthesis *filterbank.Synthesis
	history   *spectrum.History // spectral history, THFGen slots kept from the previous frame
	chirp     spectrum.Chirp
	adjuster  *spectrum.Adjuster
	env       spectrum.Envelope
	x         []filterbank.Slot // synthesis input
}

func newChannel(tm syntax.Timing, bands int) *channel {
	return &channel{
		analysis:  filterbank.NewAnalysis(),
		synthesis: filterbank.NewSynthesis(bands),
		history:   spectrum.NewHistory(tm),
		adjuster:  spectrum.NewAdjuster(),
		x:         make([]filterbank.Slot, tm.NumTimeSlotsRate()),
	}
}

func (c *channel) reset() {
	c.analysis.Reset()
	c.synthesis.Reset()
	c.history.Reset()
	c.chirp.Reset()
	c.adjuster.Reset()
	c.env = spectrum.Envelope{}
}

// slide keeps the last THFGen slots of the frame as the start of the next
// one and clears the rest.
func (c *channel) slide(tm syntax.Timing) {
	c.history.Advance(tm.NumTimeSlotsRate())
	for i := tm.THFGen; i < c.history.Len(); i++ {
		*c.history.At(i) = filterbank.Slot{}
	}
}

// Decoder decodes the SBR data of one AAC element, frame by frame.
//
// Frames must be passed in stream order: HF generation and gain smoothing
// read state left by the previous frame.
type Decoder struct {
	config Config
	timing syntax.Timing

	// Header state
	header      syntax.Header
	prevHeader  syntax.Header // header the current tables were checked against
	headerFlag  bool          // this frame carried a header
	headerCount int
	bands       *tables.Bands
	state       State

	reset      bool // tables were rebuilt for this frame
	forceReset bool // rebuild on the next frame even without a change
	justSeeked bool
	parsed     bool // Parse ran since the last Process

	// errCount counts failed frames since the last successful reset. While
	// it is non-zero frames are passed through.
	errCount int
	status   Error

	element  syntax.Element
	parseCfg syntax.Config
	adjust   spectrum.AdjustConfig

	// Continuity snapshot of the last successful frame
	kxPrev int
	mPrev  int

	reader BitReader // set during Parse for the stereo extension
	psUsed bool

	channels []*channel
	coded    int // channels carried by the element

	// DecodeBuffer scratch
	in  [][]float32
	out [][]float32
}

// NewDecoder returns a Decoder for the given configuration, waiting for its
// first header.
func NewDecoder(cfg Config) (*Decoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	d := &Decoder{
		config: cfg,
		timing: syntax.DefaultTiming(cfg.FrameLength),
		header: syntax.DefaultHeader(),
		kxPrev: 32,
		coded:  1,
	}
	if cfg.Element == ElementCPE {
		d.coded = 2
	}

	bands := 64
	if cfg.DownSampled {
		bands = 32
	}
	for range d.Channels() {
		d.channels = append(d.channels, newChannel(d.timing, bands))
	}

	d.parseCfg = syntax.Config{Header: &d.header, Timing: d.timing}
	if cfg.Stereo != nil {
		d.parseCfg.Extension = stereoHandler{d}
	}
	d.adjust = spectrum.AdjustConfig{Header: &d.header, Timing: d.timing}

	for range d.coded {
		d.in = append(d.in, make([]float32, cfg.FrameLength))
	}
	for range d.Channels() {
		d.out = append(d.out, make([]float32, d.OutputLength()))
	}
	return d, nil
}

// Config returns the decoder configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// Channels returns the number of output channels: one for a single channel
// element, two for a pair or with parametric stereo.
func (d *Decoder) Channels() int {
	if d.config.Element == ElementCPE || d.config.Stereo != nil {
		return 2
	}
	return 1
}

// FrameLength returns the number of core samples per channel and frame.
func (d *Decoder) FrameLength() int {
	return d.config.FrameLength
}

// OutputLength returns the number of samples per channel and frame that
// Process writes.
func (d *Decoder) OutputLength() int {
	if d.config.DownSampled {
		return d.config.FrameLength
	}
	return 2 * d.config.FrameLength
}

// OutputSampleRate returns the sample rate of the decoded output.
func (d *Decoder) OutputSampleRate() uint32 {
	if d.config.DownSampled {
		return d.config.SampleRate / 2
	}
	return d.config.SampleRate
}

// State returns the header state after the last parsed frame.
func (d *Decoder) State() State {
	return d.state
}

// LastStatus returns the outcome of the last frame. Recoverable errors are
// reported here instead of being returned.
func (d *Decoder) LastStatus() Error {
	return d.status
}

// PostSeekReset tells the decoder the stream position jumped. Output stays
// limited to the low band until the next frame with a header, which also
// rebuilds the frequency tables.
func (d *Decoder) PostSeekReset() {
	d.justSeeked = true
}

// fail records a recoverable frame error. The following frames are passed
// through until a reset succeeds; one is scheduled for the next frame.
func (d *Decoder) fail(e Error) {
	d.status = e
	d.errCount++
	d.forceReset = true
}

// resetChannels clears every history and the continuity snapshot after the
// frequency tables changed.
func (d *Decoder) resetChannels() {
	for _, c := range d.channels {
		c.reset()
	}
	for i := range d.element.Channels {
		d.element.Channels[i].ResetHistory()
	}
	d.kxPrev, d.mPrev = d.bands.Kx, d.bands.M
}

// savePrev keeps what the next frame needs from a successful one.
func (d *Decoder) savePrev() {
	d.kxPrev, d.mPrev = d.bands.Kx, d.bands.M
	for ch := range d.coded {
		data := &d.element.Channels[ch]
		data.SavePrev(d.bands)
		d.channels[ch].adjuster.SavePrev(data)
	}
}
