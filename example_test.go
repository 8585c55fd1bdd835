package sbr_test

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/llehouerou/go-sbr"
)

func Example() {
	dec, err := sbr.NewDecoder(sbr.Config{
		SampleRate: 44100,
		Element:    sbr.ElementSCE,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d channel, %d -> %d samples at %d Hz\n",
		dec.Channels(), dec.FrameLength(), dec.OutputLength(), dec.OutputSampleRate())

	in := [][]float32{make([]float32, dec.FrameLength())}
	out := [][]float32{make([]float32, dec.OutputLength())}

	// EXT_SBR_DATA without a header: there are no tables yet, so the
	// frame is passed through.
	payload := []byte{0xd0}
	if err := dec.Decode(payload, in, out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dec.State(), dec.LastStatus())

	// Output:
	// 1 channel, 1024 -> 2048 samples at 44100 Hz
	// NoHeader No error
}

func ExampleDecoder_DecodeBuffer() {
	dec, err := sbr.NewDecoder(sbr.Config{
		SampleRate:  48000,
		Element:     sbr.ElementCPE,
		FrameLength: 960,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	in := &audio.Float32Buffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 24000},
		Data:   make([]float32, 2*960),
	}
	out := &audio.Float32Buffer{}
	if err := dec.DecodeBuffer([]byte{0xd0}, in, out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Format.NumChannels, out.Format.SampleRate, out.NumFrames())

	// Output:
	// 2 48000 1920
}

func ExampleError() {
	dec, err := sbr.NewDecoder(sbr.Config{SampleRate: 44100, FrameLength: 2048})
	fmt.Println(dec == nil, err)

	// Output:
	// true Invalid SBR decoder configuration
}
