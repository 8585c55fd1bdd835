// Package output converts between the decoder's sample scale and
// interleaved PCM.
package output

// FloatScale normalizes the 16-bit range the decoder works at to [-1.0, 1.0].
const FloatScale = float32(1.0 / 32768.0)

// clipUnit clips a normalized sample to [-1.0, 1.0].
func clipUnit(sample float32) float32 {
	return max(-1, min(sample, 1))
}

// ToFloat32 interleaves frameLen samples of every channel of input into
// output, normalized by FloatScale and clipped to [-1.0, 1.0].
func ToFloat32(input [][]float32, frameLen int, output []float32) {
	channels := len(input)
	for ch, in := range input {
		for i, s := range in[:frameLen] {
			output[i*channels+ch] = clipUnit(s * FloatScale)
		}
	}
}

// FromFloat32 de-interleaves normalized samples into output, one slice per
// channel, scaled to the 16-bit range. It converts as many whole frames as
// fit in both input and output and returns that count.
func FromFloat32(input []float32, output [][]float32) int {
	channels := len(output)
	if channels == 0 {
		return 0
	}
	frames := len(input) / channels
	for _, out := range output {
		frames = min(frames, len(out))
	}
	for ch, out := range output {
		for i := range frames {
			out[i] = input[i*channels+ch] / FloatScale
		}
	}
	return frames
}
