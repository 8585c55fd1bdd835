package tables

// GetSRIndex returns the sample rate index for a given sample rate.
// Rates between table entries map to the nearest entry on a logarithmic
// scale; the thresholds are the geometric means of adjacent rates.
func GetSRIndex(sampleRate uint32) uint8 {
	if sampleRate >= 92017 {
		return 0
	}
	if sampleRate >= 75132 {
		return 1
	}
	if sampleRate >= 55426 {
		return 2
	}
	if sampleRate >= 46009 {
		return 3
	}
	if sampleRate >= 37566 {
		return 4
	}
	if sampleRate >= 27713 {
		return 5
	}
	if sampleRate >= 23004 {
		return 6
	}
	if sampleRate >= 18783 {
		return 7
	}
	if sampleRate >= 13856 {
		return 8
	}
	if sampleRate >= 11502 {
		return 9
	}
	if sampleRate >= 9391 {
		return 10
	}
	return 11
}

// IsSBRRate reports whether sampleRate is an SBR output rate with a full set
// of per-rate tables. Rates below 16 kHz have no patch goal band.
func IsSBRRate(sampleRate uint32) bool {
	return goalSubband[GetSRIndex(sampleRate)] != 0
}

// goalSubband is round(2.048e6 / fs) per sample rate index; patches stop at
// the first master band border at or above it.
var goalSubband = [12]int{
	21, 23, 32, 43, 46, 64, 85, 93, 128, 0, 0, 0,
}

// maxSpan returns the largest allowed k2-k0 distance for the rate.
func maxSpan(sampleRate uint32) int {
	switch {
	case sampleRate >= 48000:
		return 32
	case sampleRate <= 32000:
		return 48
	default:
		return 45
	}
}
