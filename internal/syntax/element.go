package syntax

import "github.com/llehouerou/go-sbr/internal/tables"

// ExtensionHandler consumes one sbr_extension() element. bitsLeft is the
// number of bits available after the extension id. It returns the number
// of bits it read.
type ExtensionHandler interface {
	ParseExtension(r BitReader, id int, bitsLeft int) int
}

// Config carries what element parsing needs besides the bits.
type Config struct {
	Header *Header
	Bands  *tables.Bands
	Timing Timing

	// Extension receives extended data elements. When nil every element
	// is skipped as 6 bits of bs_extension_data.
	Extension ExtensionHandler
}

// Element is the SBR data of one SCE or CPE.
type Element struct {
	Coupling bool
	Channels [2]Channel
}

// ParseSingle reads sbr_single_channel_element() into Channels[0].
// Source: ISO/IEC 14496-3, 4.4.2.8 sbr_single_channel_element()
func (e *Element) ParseSingle(r BitReader, cfg *Config) error {
	if r.ReadBool() { // bs_data_extra
		r.ReadBits(4)
	}

	e.Coupling = false
	ch := &e.Channels[0]
	if err := ch.Grid.Parse(r, cfg.Timing); err != nil {
		return err
	}
	ch.parseDTDF(r)
	ch.parseInvf(r, cfg.Bands)
	ch.parseEnvelope(r, cfg.Header, cfg.Bands, false)
	ch.parseNoise(r, cfg.Bands, false)
	ch.parseHarmonics(r, cfg.Bands)

	return parseExtendedData(r, cfg.Extension)
}

// ParsePair reads sbr_channel_pair_element(). With coupling the second
// channel shares the first channel's grid and inverse filtering modes and
// carries balance data.
// Source: ISO/IEC 14496-3, 4.4.2.8 sbr_channel_pair_element()
func (e *Element) ParsePair(r BitReader, cfg *Config) error {
	if r.ReadBool() { // bs_data_extra
		r.ReadBits(4)
		r.ReadBits(4)
	}

	left, right := &e.Channels[0], &e.Channels[1]
	b := cfg.Bands

	e.Coupling = r.ReadBool()
	if e.Coupling {
		if err := left.Grid.Parse(r, cfg.Timing); err != nil {
			return err
		}
		right.Grid = left.Grid

		left.parseDTDF(r)
		right.parseDTDF(r)
		left.parseInvf(r, b)
		right.InvfMode = left.InvfMode

		left.parseEnvelope(r, cfg.Header, b, false)
		left.parseNoise(r, b, false)
		right.parseEnvelope(r, cfg.Header, b, true)
		right.parseNoise(r, b, true)
	} else {
		saved := left.Grid
		if err := left.Grid.Parse(r, cfg.Timing); err != nil {
			return err
		}
		if err := right.Grid.Parse(r, cfg.Timing); err != nil {
			left.Grid = saved
			return err
		}

		left.parseDTDF(r)
		right.parseDTDF(r)
		left.parseInvf(r, b)
		right.parseInvf(r, b)
		left.parseEnvelope(r, cfg.Header, b, false)
		right.parseEnvelope(r, cfg.Header, b, false)
		left.parseNoise(r, b, false)
		right.parseNoise(r, b, false)
	}

	left.parseHarmonics(r, b)
	right.parseHarmonics(r, b)

	return parseExtendedData(r, cfg.Extension)
}

// parseExtendedData reads the bs_extended_data part shared by both element
// types. Only the first parametric stereo element is passed on as such;
// later ones are handled as unknown ids.
func parseExtendedData(r BitReader, h ExtensionHandler) error {
	if !r.ReadBool() {
		return nil
	}

	size := int(r.ReadBits(4))
	if size == 15 {
		size += int(r.ReadBits(8))
	}

	bitsLeft := 8 * size
	psSeen := false
	for bitsLeft > 7 {
		id := int(r.ReadBits(LenExtensionID))
		if id == ExtensionIDPS {
			if psSeen {
				id = 3
			}
			psSeen = true
		}

		n := LenExtensionID + parseExtension(r, h, id, bitsLeft-LenExtensionID)
		if n > bitsLeft {
			return ErrExtensionOverrun
		}
		bitsLeft -= n
	}

	skipBits(r, bitsLeft)
	return nil
}

func parseExtension(r BitReader, h ExtensionHandler, id, bitsLeft int) int {
	if h != nil {
		return h.ParseExtension(r, id, bitsLeft)
	}
	r.ReadBits(6) // bs_extension_data
	return 6
}

func skipBits(r BitReader, n int) {
	for n > 0 {
		step := min(n, 32)
		r.ReadBits(uint(step))
		n -= step
	}
}
