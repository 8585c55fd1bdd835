package tables

import "slices"

// limiterRatio is the smallest border ratio kept for limiter band settings
// 1-3 (1.2, 2 and 3 bands per octave).
var limiterRatio = [3]float32{1.327152, 1.185093, 1.119872}

// buildLimiterTables builds the limiter band tables for all four
// bs_limiter_bands settings. Setting 0 is a single band over the whole SBR
// range. The others start from the low resolution borders plus the inner
// patch borders and drop borders closer than the setting's ratio, keeping
// patch borders where possible.
// Source: ISO/IEC 14496-3, 4.6.18.3.2.3 (limiter frequency band table)
func (b *Bands) buildLimiterTables() {
	lo := b.FTableRes[LoRes][:b.NLow+1]

	b.FTableLim[0][0] = lo[0] - b.Kx
	b.FTableLim[0][1] = lo[b.NLow] - b.Kx
	b.NL[0] = 1

	patchBorders := make([]int, b.NumPatches+1)
	patchBorders[0] = b.Kx
	for k := 1; k <= b.NumPatches; k++ {
		patchBorders[k] = patchBorders[k-1] + b.PatchNumSubbands[k-1]
	}

	for s := 1; s < 4; s++ {
		n := b.NumPatches + b.NLow
		if n < 1 {
			// Nothing to limit over; the setting yields no limiter bands.
			b.NL[s] = 0
			continue
		}

		lim := make([]int, 0, len(lo)+b.NumPatches)
		lim = append(lim, lo...)
		if b.NumPatches > 1 {
			lim = append(lim, patchBorders[1:b.NumPatches]...)
		}
		lim = lim[:n]
		slices.Sort(lim)

		for k := 1; k < len(lim); {
			var ratio float32
			if lim[k-1] != 0 {
				ratio = float32(lim[k]) / float32(lim[k-1])
			}
			if ratio >= limiterRatio[s-1] {
				k++
				continue
			}

			if lim[k] != lim[k-1] && slices.Contains(patchBorders, lim[k]) {
				if slices.Contains(patchBorders, lim[k-1]) {
					k++
					continue
				}
				lim = slices.Delete(lim, k-1, k)
				continue
			}
			lim = slices.Delete(lim, k, k+1)
		}

		b.NL[s] = len(lim) - 1
		for k, v := range lim {
			b.FTableLim[s][k] = v - b.Kx
		}
	}
}
