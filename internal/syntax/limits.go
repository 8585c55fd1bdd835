package syntax

// Limit constants for SBR decoding.
const (
	MaxEnvelopes   = 5  // envelopes per frame (VarVar); other classes stop at 4
	MaxNoiseFloors = 2  // noise floors per frame
	MaxBands       = 64 // QMF subbands
	MaxNoiseBands  = 5  // noise bands (N_Q)
	MaxRelBorders  = 3  // relative borders per side
)
