// Package spectrum implements the QMF-domain processing of SBR decoding.
//
// This includes envelope and noise floor dequantisation, HF generation
// (patching with chirp-controlled linear prediction) and HF adjustment
// (envelope estimation, limited gains, smoothing, noise and sinusoid
// insertion).
package spectrum
