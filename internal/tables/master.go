package tables

import (
	"math"
	"slices"
)

// MaxBands bounds every band table; boundaries are QMF channel numbers 0-64.
const MaxBands = 64

// MasterFrequencyTableFs0 builds the linear master table used when
// bs_freq_scale is 0: bands of one channel, or two with bs_alter_scale, with
// the rounding error spread over the top (or bottom) bands.
// Source: ISO/IEC 14496-3, 4.6.18.3.2.1 (master frequency band table, bs_freq_scale 0)
func MasterFrequencyTableFs0(k0, k2 int, alterScale bool) ([]int, error) {
	if k2 <= k0 {
		return nil, ErrMasterTable
	}

	dk := 1
	var nrBands int
	if alterScale {
		dk = 2
		nrBands = ((k2 - k0 + 2) >> 2) << 1
	} else {
		nrBands = ((k2 - k0) >> 1) << 1
	}
	nrBands = min(nrBands, MaxBands-1)
	if nrBands <= 0 {
		return nil, ErrMasterTable
	}

	widths := make([]int, nrBands)
	for k := range widths {
		widths[k] = dk
	}

	diff := k2 - (k0 + nrBands*dk)
	if diff > 0 {
		for k := nrBands - 1; diff != 0; k-- {
			widths[k]++
			diff--
		}
	} else if diff < 0 {
		for k := 0; diff != 0; k++ {
			widths[k]--
			diff++
		}
	}

	return accumulate(k0, widths)
}

// MasterFrequencyTable builds the logarithmic master table for bs_freq_scale
// 1-3 (12, 10 or 8 bands per octave). Above k2/k0 > 2.2449 the range is
// split at 2*k0 and the upper region uses a warped band density.
// Source: ISO/IEC 14496-3, 4.6.18.3.2.1 (master frequency band table)
func MasterFrequencyTable(k0, k2, freqScale int, alterScale bool) ([]int, error) {
	if k2 <= k0 || freqScale < 1 || freqScale > 3 {
		return nil, ErrMasterTable
	}

	bands := [3]int{6, 5, 4}[freqScale-1]

	twoRegions := float64(float32(k2)/float32(k0)) > 2.2449
	k1 := k2
	if twoRegions {
		k1 = 2 * k0
	}

	nrBand0 := min(2*findBands(false, bands, k0, k1), MaxBands-1)
	if nrBand0 <= 0 {
		return nil, ErrMasterTable
	}
	widths0 := geometricWidths(nrBand0, k0, k1)
	slices.Sort(widths0)

	if !twoRegions {
		return accumulate(k0, widths0)
	}

	nrBand1 := min(2*findBands(true, bands, k1, k2), MaxBands-1)
	if nrBand1 <= 0 {
		return nil, ErrMasterTable
	}
	widths1 := geometricWidths(nrBand1, k1, k2)

	// The lower region ends with its widest band; the upper region must not
	// start narrower than that.
	if last := widths0[nrBand0-1]; widths1[0] < last {
		slices.Sort(widths1)
		change := last - widths1[0]
		widths1[0] = last
		widths1[nrBand1-1] -= change
	}
	slices.Sort(widths1)

	lower, err := accumulate(k0, widths0)
	if err != nil {
		return nil, err
	}
	upper, err := accumulate(k1, widths1)
	if err != nil {
		return nil, err
	}
	if len(lower)+len(upper)-1 > MaxBands+1 {
		return nil, ErrMasterTable
	}
	return append(lower, upper[1:]...), nil
}

// findBands returns the number of bands of the given density between a0
// and a1, rounded.
func findBands(warp bool, bands, a0, a1 int) int {
	div := math.Log(2)
	if warp {
		div *= 1.3
	}
	return int(float64(bands)*math.Log(float64(float32(a1)/float32(a0)))/div + 0.5)
}

// geometricWidths splits [a0, a1] into n bands whose borders follow a
// geometric progression rounded to whole channels.
func geometricWidths(n, a0, a1 int) []int {
	q := float32(math.Pow(float64(a1)/float64(a0), 1/float64(n)))
	qk := float32(a0)
	prev := int(float64(qk) + 0.5)

	widths := make([]int, n)
	for k := range widths {
		qk *= q
		next := int(float64(qk) + 0.5)
		widths[k] = next - prev
		prev = next
	}
	return widths
}

// accumulate turns band widths into band borders starting at start.
func accumulate(start int, widths []int) ([]int, error) {
	borders := make([]int, len(widths)+1)
	borders[0] = start
	for k, w := range widths {
		if w <= 0 {
			return nil, ErrMasterTable
		}
		borders[k+1] = borders[k] + w
	}
	return borders, nil
}
