// Package sbr provides a pure Go Spectral Band Replication decoder, the
// high frequency reconstruction layer of HE-AAC (ISO/IEC 14496-3, 4.6.18).
//
// A Decoder takes the SBR extension payload of one AAC frame together with
// the time domain output of the core decoder for the same frame, and
// returns full bandwidth PCM at twice the core sample rate (or at the core
// rate in down-sampled mode).
//
// # Basic Usage
//
//	dec, err := sbr.NewDecoder(sbr.Config{
//	    SampleRate: 44100, // twice the core rate
//	    Element:    sbr.ElementSCE,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	in := [][]float32{make([]float32, dec.FrameLength())}
//	out := [][]float32{make([]float32, dec.OutputLength())}
//	for {
//	    // fill in[0] with the core decoder output, payload with the
//	    // fill element contents
//	    if err := dec.Decode(payload, in, out); err != nil {
//	        // ErrFrameOverread: out still holds the low band
//	    }
//	}
//
// Parse and Process can be called separately when the payload is read from
// a larger bitstream; DecodeBuffer works on go-audio buffers.
//
// # Errors
//
// Recoverable bitstream errors never abort decoding. The frame is passed
// through with the low band only, the error is reported by LastStatus, and
// the following frames are passed through until the decoder has been reset
// successfully.
//
// # Parametric Stereo
//
// Parametric stereo is not decoded here. A StereoExtension set in Config
// receives the PS elements of a single channel element and turns the mono
// QMF slots into a stereo pair before synthesis.
//
// # Thread Safety
//
// Decoder instances are NOT safe for concurrent use. Use one Decoder per
// element and goroutine.
package sbr
