package tables

import "fmt"

// buildPatches maps the SBR range kx..kx+M onto source bands below k0.
// Each patch copies a run of low channels whose start keeps the parity of
// the target so that the spectrum is not inverted.
// Source: ISO/IEC 14496-3, 4.6.18.6.3 (patch construction)
func (b *Bands) buildPatches(sampleRate uint32) error {
	b.NumPatches = 0
	if b.NMaster == 0 {
		return nil
	}

	goal := goalSubband[GetSRIndex(sampleRate)]
	k := b.NMaster
	if goal < b.Kx+b.M {
		k = 0
		for i := 0; b.FMaster[i] < goal; i++ {
			k = i + 1
		}
	}

	var widths, starts []int
	msb, usb := b.K0, b.Kx
	top := b.Kx + b.M
	for sb, iter := -1, 0; sb != top; iter++ {
		if iter > 2*MaxBands {
			return fmt.Errorf("kx=%d M=%d: %w", b.Kx, b.M, ErrPatchConstruction)
		}

		var odd int
		j := k + 1
		for {
			j--
			if j < 0 {
				return fmt.Errorf("no source band below %d: %w", msb, ErrPatchConstruction)
			}
			sb = b.FMaster[j]
			odd = (sb - 2 + b.K0) % 2
			if sb <= b.K0-1+msb-odd {
				break
			}
		}

		width := max(sb-usb, 0)
		if width > 0 {
			widths = append(widths, width)
			starts = append(starts, b.K0-odd-width)
			usb = sb
			msb = sb
		} else {
			msb = b.Kx
		}

		if b.FMaster[k]-sb < 3 {
			k = b.NMaster
		}
	}

	n := len(widths)
	if n > 1 && widths[n-1] < 3 {
		n--
	}
	n = min(n, MaxPatches)

	b.NumPatches = n
	copy(b.PatchNumSubbands[:], widths[:n])
	copy(b.PatchStartSubband[:], starts[:n])
	return nil
}
