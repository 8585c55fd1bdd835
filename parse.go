package sbr

import (
	"errors"

	"github.com/llehouerou/go-sbr/internal/spectrum"
	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

// Parse reads one SBR extension payload (the fill element contents
// starting at the extension type) of cnt bytes from r. It leaves r at the
// end of the payload.
//
// Only ErrFrameOverread is returned: the frame read more than cnt bytes
// and r was moved back to the end of the payload. Other errors are
// recovered from; see LastStatus.
func (d *Decoder) Parse(r BitReader, cnt int) error {
	start := r.Position()
	d.reader = r
	d.parsed = true
	d.status = ErrNone

	if syntax.ExtensionType(r.ReadBits(syntax.LenExtensionType)) == syntax.ExtSBRDataCRC {
		r.ReadBits(syntax.LenCRC) // bs_sbr_crc_bits, not checked
	}

	saved, savedBands := d.header, d.bands

	d.headerFlag = r.ReadBool()
	if d.headerFlag {
		d.header = syntax.ParseHeader(r)
		d.headerCount++
	}

	d.reset = d.forceReset || d.bands == nil || !d.header.SameTables(&d.prevHeader)
	d.forceReset = false
	d.prevHeader = d.header

	status := ErrNone
	if d.headerCount != 0 {
		status = d.parseFrame(r, saved, savedBands)
	} else {
		d.reset = false
	}

	switch {
	case d.bands == nil:
		d.state = StateNoHeader
	case d.reset:
		d.state = StateHeaderReset
	default:
		d.state = StateHeaderNoReset
	}

	d.reader = nil
	end := start + 8*cnt
	if r.Position() > end {
		r.SetPosition(end)
		d.psUsed = false
		d.fail(ErrFrameOverread)
		return ErrFrameOverread
	}
	r.SetPosition(end) // padding

	switch {
	case status != ErrNone:
		d.fail(status)
	case d.reset:
		d.errCount = 0
	}
	return nil
}

// parseFrame rebuilds the tables if needed and reads the element data. On
// failure the header and tables of the previous frame are restored.
func (d *Decoder) parseFrame(r BitReader, saved syntax.Header, savedBands *tables.Bands) Error {
	rebuild := d.reset || (d.headerFlag && d.justSeeked)
	if rebuild {
		b, err := tables.Derive(d.header.Params(), d.config.SampleRate)
		if err != nil {
			d.header, d.prevHeader = saved, saved
			d.reset = false
			return tableError(err)
		}
		d.bands = b
		if d.reset {
			d.resetChannels()
		}
	}

	d.parseCfg.Bands = d.bands
	var err error
	if d.config.Element == ElementCPE {
		err = d.element.ParsePair(r, &d.parseCfg)
	} else {
		err = d.element.ParseSingle(r, &d.parseCfg)
	}
	if err != nil {
		if rebuild {
			d.header, d.prevHeader, d.bands = saved, saved, savedBands
			d.reset = false
		}
		return dataError(err)
	}

	d.dequantise()
	return ErrNone
}

func (d *Decoder) dequantise() {
	left := &d.element.Channels[0]
	if d.config.Element == ElementSCE {
		spectrum.Dequantise(left, d.bands, &d.channels[0].env)
		return
	}

	right := &d.element.Channels[1]
	if d.element.Coupling {
		spectrum.Unmap(left, right, d.bands, &d.channels[0].env, &d.channels[1].env)
		return
	}
	spectrum.Dequantise(left, d.bands, &d.channels[0].env)
	spectrum.Dequantise(right, d.bands, &d.channels[1].env)
}

func tableError(err error) Error {
	if errors.Is(err, tables.ErrSpan) {
		return ErrInvalidHeaderField
	}
	return ErrTableDerivationFailure
}

func dataError(err error) Error {
	switch {
	case errors.Is(err, syntax.ErrInvalidTimeBorder), errors.Is(err, syntax.ErrNoEnvelopes):
		return ErrInvalidTimeBorder
	case errors.Is(err, syntax.ErrExtensionOverrun):
		return ErrFrameOverread
	}
	return ErrInvalidHeaderField
}

// stereoHandler passes parametric stereo elements to the configured
// StereoExtension.
type stereoHandler struct {
	d *Decoder
}

func (h stereoHandler) ParseExtension(r syntax.BitReader, id, bitsLeft int) int {
	d := h.d
	if id != syntax.ExtensionIDPS {
		r.ReadBits(6) // bs_extension_data
		return 6
	}
	n, headerSeen := d.config.Stereo.Parse(d.reader, bitsLeft)
	if headerSeen {
		d.psUsed = true
	}
	return n
}
