package sbr

import "github.com/llehouerou/go-sbr/internal/tables"

// ElementType is the kind of AAC element the SBR data belongs to.
type ElementType uint8

// Element types.
const (
	ElementSCE ElementType = iota // single channel element
	ElementCPE                    // channel pair element
)

func (e ElementType) String() string {
	switch e {
	case ElementSCE:
		return "SCE"
	case ElementCPE:
		return "CPE"
	}
	return "unknown"
}

// State is the header state of a decoder after the last parsed frame.
type State uint8

// Decoder states.
const (
	// StateNoHeader means no usable header has been received yet. Frames
	// are passed through with the low band only.
	StateNoHeader State = iota

	// StateHeaderNoReset means the frame used the frequency tables of an
	// earlier frame.
	StateHeaderNoReset

	// StateHeaderReset means the header changed a table field (or a reset
	// was pending) and the tables and channel histories were rebuilt.
	StateHeaderReset
)

func (s State) String() string {
	switch s {
	case StateNoHeader:
		return "NoHeader"
	case StateHeaderNoReset:
		return "HeaderNoReset"
	case StateHeaderReset:
		return "HeaderReset"
	}
	return "unknown"
}

// BitReader is the bit source of Parse, read MSB first. Position and
// SetPosition are absolute bit offsets; the decoder uses them to enforce
// the payload byte count.
type BitReader interface {
	ReadBit() uint8
	ReadBits(n uint) uint32
	ReadBool() bool
	Position() int
	SetPosition(bit int)
}

// StereoExtension is a parametric stereo decoder fed from the extended data
// of a single channel element.
type StereoExtension interface {
	// Parse reads one parametric stereo element of at most bitsLeft bits
	// and returns the number of bits read, and whether the element carried
	// a header.
	Parse(r BitReader, bitsLeft int) (bitsRead int, headerSeen bool)

	// Apply derives the stereo pair from the mono QMF slots in left,
	// writing both channels. right holds as many slots as left.
	Apply(left, right [][64]complex64)
}

// Config configures a Decoder.
type Config struct {
	// SampleRate is the SBR sample rate, twice the core decoder's rate. It
	// selects the frequency table constants and is kept as is in
	// down-sampled mode.
	SampleRate uint32

	// Element is the element type the SBR data is attached to.
	Element ElementType

	// FrameLength is the core frame length, 1024 or 960. Zero means 1024.
	FrameLength int

	// DownSampled selects the 32-band synthesis bank, which keeps the core
	// sample rate.
	DownSampled bool

	// Stereo receives parametric stereo data. Only valid with ElementSCE;
	// the decoder then outputs two channels.
	Stereo StereoExtension
}

func (c *Config) validate() error {
	if c.FrameLength == 0 {
		c.FrameLength = 1024
	}
	switch {
	case c.FrameLength != 1024 && c.FrameLength != 960:
		return ErrInvalidConfig
	case c.Element != ElementSCE && c.Element != ElementCPE:
		return ErrInvalidConfig
	case c.Stereo != nil && c.Element != ElementSCE:
		return ErrInvalidConfig
	case c.SampleRate == 0 || !tables.IsSBRRate(c.SampleRate):
		return ErrInvalidConfig
	}
	return nil
}
