package syntax

import "github.com/llehouerou/go-sbr/internal/tables"

// BitReader is the bit source the parser consumes, MSB first.
type BitReader interface {
	ReadBit() uint8
	ReadBits(n uint) uint32
	ReadBool() bool
}

// Header holds the fields of sbr_header().
type Header struct {
	AmpRes     bool // 3.0 dB envelope steps instead of 1.5 dB
	StartFreq  int
	StopFreq   int
	XoverBand  int
	FreqScale  int
	AlterScale bool
	NoiseBands int

	LimiterBands  int
	LimiterGains  int
	InterpolFreq  bool
	SmoothingMode bool
}

// DefaultHeader returns the values used for the optional header parts when
// their presence bits are clear.
func DefaultHeader() Header {
	return Header{
		FreqScale:     2,
		AlterScale:    true,
		NoiseBands:    2,
		LimiterBands:  2,
		LimiterGains:  2,
		InterpolFreq:  true,
		SmoothingMode: true,
	}
}

// ParseHeader reads sbr_header().
// Source: ISO/IEC 14496-3, 4.4.2.8 sbr_header()
func ParseHeader(r BitReader) Header {
	h := DefaultHeader()

	h.AmpRes = r.ReadBool()
	h.StartFreq = int(r.ReadBits(4))
	h.StopFreq = int(r.ReadBits(4))
	h.XoverBand = int(r.ReadBits(3))
	r.ReadBits(2) // bs_reserved
	extra1 := r.ReadBool()
	extra2 := r.ReadBool()

	if extra1 {
		h.FreqScale = int(r.ReadBits(2))
		h.AlterScale = r.ReadBool()
		h.NoiseBands = int(r.ReadBits(2))
	}
	if extra2 {
		h.LimiterBands = int(r.ReadBits(2))
		h.LimiterGains = int(r.ReadBits(2))
		h.InterpolFreq = r.ReadBool()
		h.SmoothingMode = r.ReadBool()
	}
	return h
}

// SameTables reports whether h and o describe the same frequency tables.
// A difference in any of these fields requires a reset.
func (h *Header) SameTables(o *Header) bool {
	return h.StartFreq == o.StartFreq &&
		h.StopFreq == o.StopFreq &&
		h.FreqScale == o.FreqScale &&
		h.AlterScale == o.AlterScale &&
		h.XoverBand == o.XoverBand &&
		h.NoiseBands == o.NoiseBands
}

// Params returns the table derivation inputs. The sample rate mode is not
// transmitted and is always on.
func (h *Header) Params() tables.Params {
	return tables.Params{
		StartFreq:      h.StartFreq,
		StopFreq:       h.StopFreq,
		SamplerateMode: true,
		FreqScale:      h.FreqScale,
		AlterScale:     h.AlterScale,
		XoverBand:      h.XoverBand,
		NoiseBands:     h.NoiseBands,
	}
}
