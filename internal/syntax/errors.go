// Package syntax implements the SBR bitstream syntax: header, time/frequency
// grid, envelope and noise floor data, sinusoidal coding and extended data.
// This file contains error definitions for the syntax package.
package syntax

import "errors"

// Grid errors.
var (
	// ErrInvalidTimeBorder indicates the envelope time border vector could
	// not be built. The grid keeps the previous frame's borders.
	ErrInvalidTimeBorder = errors.New("syntax: invalid time border vector")

	// ErrNoEnvelopes indicates a frame with zero envelopes.
	ErrNoEnvelopes = errors.New("syntax: frame has no envelopes")
)

// Extended data errors.
var (
	// ErrExtensionOverrun indicates an extension element read more bits than
	// the extended data declared.
	ErrExtensionOverrun = errors.New("syntax: extension element exceeds extended data size")
)
