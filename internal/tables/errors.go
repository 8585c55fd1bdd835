package tables

import "errors"

var (
	// ErrSpan is returned when k2-k0 exceeds the limit for the sample rate.
	ErrSpan = errors.New("tables: start/stop channel span too large")

	// ErrMasterTable is returned when the master band table cannot be built:
	// k2 <= k0, no bands, or a band of zero width.
	ErrMasterTable = errors.New("tables: invalid master frequency table")

	// ErrDerivedTable is returned when the crossover band or the resulting
	// kx/M lie outside the QMF range.
	ErrDerivedTable = errors.New("tables: invalid derived frequency table")

	// ErrPatchConstruction is returned when the patches cannot reach kx+M.
	ErrPatchConstruction = errors.New("tables: patch construction failed")
)
