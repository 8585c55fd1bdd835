package sbr

import (
	"github.com/go-audio/audio"

	"github.com/llehouerou/go-sbr/internal/bits"
	"github.com/llehouerou/go-sbr/internal/output"
)

// Decode parses payload, one complete SBR extension payload, and processes
// the frame. It is Parse followed by Process; the frame is processed even
// when the payload overran, and ErrFrameOverread is returned afterwards.
func (d *Decoder) Decode(payload []byte, in, out [][]float32) error {
	perr := d.Parse(bits.NewReader(payload), len(payload))
	if err := d.Process(in, out); err != nil {
		return err
	}
	return perr
}

// DecodeBuffer is Decode for interleaved, normalized buffers. in must hold
// FrameLength frames of the coded channels. out is resized to OutputLength
// frames and its format set to the output channels and sample rate.
func (d *Decoder) DecodeBuffer(payload []byte, in, out *audio.Float32Buffer) error {
	if in == nil || out == nil || in.Format == nil || in.Format.NumChannels != d.coded {
		return ErrElementMismatch
	}
	if in.NumFrames() < d.config.FrameLength {
		return ErrShortBuffer
	}
	output.FromFloat32(in.Data[:d.config.FrameLength*d.coded], d.in)

	// d.in and d.out are sized for this decoder, so only an overread can
	// fail here.
	derr := d.Decode(payload, d.in, d.out)

	n := d.OutputLength() * d.Channels()
	if cap(out.Data) < n {
		out.Data = make([]float32, n)
	}
	out.Data = out.Data[:n]
	output.ToFloat32(d.out, d.OutputLength(), out.Data)
	out.Format = &audio.Format{
		NumChannels: d.Channels(),
		SampleRate:  int(d.OutputSampleRate()),
	}
	return derr
}
