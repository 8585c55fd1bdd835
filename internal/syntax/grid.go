package syntax

// Timing describes the time slot layout of one SBR frame.
type Timing struct {
	NumTimeSlots int // 16 for 1024-sample frames, 15 for 960
	Rate         int // QMF slots per time slot
	THFGen       int // slots of history read by HF generation
	THFAdj       int // offset of the first adjusted slot
}

// DefaultTiming returns the timing for a core frame length of 1024 or 960.
func DefaultTiming(frameLength int) Timing {
	slots := 16
	if frameLength == 960 {
		slots = 15
	}
	return Timing{NumTimeSlots: slots, Rate: 2, THFGen: 8, THFAdj: 2}
}

// NumTimeSlotsRate returns the number of QMF slots in one frame.
func (t Timing) NumTimeSlotsRate() int {
	return t.NumTimeSlots * t.Rate
}

// Grid is the time/frequency grid of one channel for one frame. Borders are
// in QMF slots relative to the start of the frame.
type Grid struct {
	Class FrameClass
	LE    int                   // number of envelopes
	LQ    int                   // number of noise floors
	TE    [MaxEnvelopes + 1]int // envelope borders, LE+1 used
	TQ    [MaxNoiseFloors + 1]int
	F     [MaxEnvelopes]int // frequency resolution per envelope
	Point int               // bs_pointer

	absBordLead  int
	absBordTrail int
	numRel0      int
	numRel1      int
	relBord0     [MaxRelBorders]int
	relBord1     [MaxRelBorders]int
}

// log2Table is the bit width of bs_pointer for a given count.
var log2Table = [10]uint{0, 0, 1, 2, 2, 3, 3, 3, 3, 4}

func pointerBits(n int) uint {
	if n < 0 || n >= len(log2Table) {
		return 0
	}
	return log2Table[n]
}

// Parse reads sbr_grid() and rebuilds the border vectors. On error the grid
// is left exactly as it was before the call.
// Source: ISO/IEC 14496-3, 4.4.2.8 sbr_grid()
func (g *Grid) Parse(r BitReader, tm Timing) error {
	saved := *g
	if err := g.parse(r, tm); err != nil {
		*g = saved
		return err
	}
	return nil
}

func (g *Grid) parse(r BitReader, tm Timing) error {
	var numEnv int

	g.Class = FrameClass(r.ReadBits(2))
	g.numRel0, g.numRel1 = 0, 0

	switch g.Class {
	case FixFix:
		numEnv = min(1<<r.ReadBits(2), MaxEnvelopes)
		res := int(r.ReadBit())
		for env := range numEnv {
			g.F[env] = res
		}
		g.absBordLead = 0
		g.absBordTrail = tm.NumTimeSlots

	case FixVar:
		g.absBordTrail = int(r.ReadBits(2)) + tm.NumTimeSlots
		numEnv = int(r.ReadBits(2)) + 1
		g.numRel1 = numEnv - 1
		for rel := range g.numRel1 {
			g.relBord1[rel] = 2*int(r.ReadBits(2)) + 2
		}
		g.Point = int(r.ReadBits(pointerBits(numEnv + 1)))
		for env := range numEnv {
			g.F[numEnv-env-1] = int(r.ReadBit())
		}
		g.absBordLead = 0

	case VarFix:
		g.absBordLead = int(r.ReadBits(2))
		numEnv = int(r.ReadBits(2)) + 1
		g.numRel0 = numEnv - 1
		for rel := range g.numRel0 {
			g.relBord0[rel] = 2*int(r.ReadBits(2)) + 2
		}
		g.Point = int(r.ReadBits(pointerBits(numEnv + 1)))
		for env := range numEnv {
			g.F[env] = int(r.ReadBit())
		}
		g.absBordTrail = tm.NumTimeSlots

	case VarVar:
		g.absBordLead = int(r.ReadBits(2))
		g.absBordTrail = int(r.ReadBits(2)) + tm.NumTimeSlots
		g.numRel0 = int(r.ReadBits(2))
		g.numRel1 = int(r.ReadBits(2))
		numEnv = min(MaxEnvelopes, g.numRel0+g.numRel1+1)
		for rel := range g.numRel0 {
			g.relBord0[rel] = 2*int(r.ReadBits(2)) + 2
		}
		for rel := range g.numRel1 {
			g.relBord1[rel] = 2*int(r.ReadBits(2)) + 2
		}
		g.Point = int(r.ReadBits(pointerBits(g.numRel0 + g.numRel1 + 2)))
		for env := range numEnv {
			g.F[env] = int(r.ReadBit())
		}
	}

	if g.Class == VarVar {
		g.LE = min(numEnv, MaxEnvelopes)
	} else {
		g.LE = min(numEnv, 4)
	}
	if g.LE <= 0 {
		return ErrNoEnvelopes
	}
	g.LQ = 1
	if g.LE > 1 {
		g.LQ = 2
	}

	if err := g.envelopeBorders(tm); err != nil {
		return err
	}
	g.noiseBorders()
	return nil
}

// envelopeBorders builds TE from the absolute and relative borders.
// Source: ISO/IEC 14496-3, 4.6.18.3.3 (time/frequency grid)
func (g *Grid) envelopeBorders(tm Timing) error {
	var te [MaxEnvelopes + 1]int
	limit := tm.NumTimeSlotsRate() + tm.THFGen

	te[0] = tm.Rate * g.absBordLead
	te[g.LE] = tm.Rate * g.absBordTrail

	if g.Class == FixFix {
		switch g.LE {
		case 4:
			step := tm.NumTimeSlots / 4
			te[1] = tm.Rate * step
			te[2] = tm.Rate * 2 * step
			te[3] = tm.Rate * 3 * step
		case 2:
			te[1] = tm.Rate * (tm.NumTimeSlots / 2)
		}
	} else {
		// Leading relative borders count up from the leading border.
		border := g.absBordLead
		for l := 0; l < g.numRel0 && l+1 < g.LE; l++ {
			border += g.relBord0[l]
			if tm.Rate*border+tm.THFAdj > limit {
				return ErrInvalidTimeBorder
			}
			te[l+1] = tm.Rate * border
		}

		// Trailing relative borders count down from the trailing border.
		border = g.absBordTrail
		for l := 0; l < g.numRel1 && g.LE-l-1 > 0; l++ {
			if border < g.relBord1[l] {
				return ErrInvalidTimeBorder
			}
			border -= g.relBord1[l]
			te[g.LE-l-1] = tm.Rate * border
		}
	}

	if te[g.LE]+tm.THFAdj > limit {
		return ErrInvalidTimeBorder
	}
	for l := 1; l <= g.LE; l++ {
		if te[l] < te[l-1] {
			return ErrInvalidTimeBorder
		}
	}

	g.TE = te
	return nil
}

// noiseBorders derives TQ from TE.
func (g *Grid) noiseBorders() {
	g.TQ[0] = g.TE[0]
	if g.LE == 1 {
		g.TQ[1] = g.TE[1]
		g.TQ[2] = 0
		return
	}
	g.TQ[1] = g.TE[g.middleBorder()]
	g.TQ[2] = g.TE[g.LE]
}

// middleBorder returns the envelope border that splits the two noise floors.
func (g *Grid) middleBorder() int {
	var m int
	switch g.Class {
	case FixFix:
		m = g.LE / 2
	case VarFix:
		switch g.Point {
		case 0:
			m = 1
		case 1:
			m = g.LE - 1
		default:
			m = g.Point - 1
		}
	case FixVar, VarVar:
		if g.Point > 1 {
			m = g.LE + 1 - g.Point
		} else {
			m = g.LE - 1
		}
	}
	return max(0, min(m, g.LE))
}

// Transient returns the index of the envelope that starts at a transient,
// or -1. The first envelope after a transient is not time-smoothed.
func (g *Grid) Transient() int {
	switch g.Class {
	case FixFix:
		return -1
	case FixVar, VarVar:
		if g.Point == 0 {
			return -1
		}
		return g.LE + 1 - g.Point
	case VarFix:
		if g.Point <= 1 {
			return -1
		}
		return g.Point - 1
	}
	return -1
}
