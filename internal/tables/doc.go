// Package tables derives the SBR frequency band tables from header fields.
//
// The derivation chain follows ISO/IEC 14496-3, 4.6.18.3: start and stop
// QMF channels from per-rate lookup tables, the master band table, the
// high/low resolution and noise tables derived from it, HF patches, and the
// four limiter band tables. Everything is recomputed together on an SBR
// reset and is read-only otherwise.
package tables
