// Command sbrupsample runs a core rate WAV file through the SBR decoder and
// writes the result at twice the sample rate.
//
// Without -payloads every frame is passed through, which upsamples through
// the QMF banks with an empty high band. With -payloads each frame is
// decoded with the next SBR payload from the file, stored as a 16-bit
// big-endian byte count followed by the payload bytes.
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/llehouerou/go-sbr"
)

// passThrough is EXT_SBR_DATA without a header.
var passThrough = []byte{0xd0}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("sbrupsample", flag.ContinueOnError)

	input := flagSet.String("input", "", "core rate wav file to read")
	output := flagSet.String("output", "output.wav", "filename to write to")
	payloadPath := flagSet.String("payloads", "", "file of length-prefixed SBR payloads, one per frame")
	frameLength := flagSet.Int("frame", 1024, "core frame length, 1024 or 960")
	bitDepth := flagSet.Int("bitdepth", 16, "output bit depth")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *input == "" {
		return errors.New("you must set the -input flag")
	}

	pcm, format, err := readWav(*input)
	if err != nil {
		return err
	}

	var payloads [][]byte
	if *payloadPath != "" {
		payloads, err = readPayloads(*payloadPath)
		if err != nil {
			return err
		}
	}

	element := sbr.ElementSCE
	switch format.NumChannels {
	case 1:
	case 2:
		element = sbr.ElementCPE
	default:
		return fmt.Errorf("%s: %d channels, want 1 or 2", *input, format.NumChannels)
	}

	dec, err := sbr.NewDecoder(sbr.Config{
		SampleRate:  2 * uint32(format.SampleRate),
		Element:     element,
		FrameLength: *frameLength,
	})
	if err != nil {
		return fmt.Errorf("core rate %d Hz: %w", format.SampleRate, err)
	}

	log.Printf("upsampling %s: %d Hz -> %d Hz, %d channels",
		*input, format.SampleRate, dec.OutputSampleRate(), format.NumChannels)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	wavOut := wav.NewEncoder(file, int(dec.OutputSampleRate()), *bitDepth, format.NumChannels, 1)

	step := dec.FrameLength() * format.NumChannels
	frameIn := &audio.Float32Buffer{Format: format, Data: make([]float32, step)}
	frameOut := &audio.Float32Buffer{}

	var frames, overreads int
	for start := 0; start < len(pcm.Data); start += step {
		n := copy(frameIn.Data, pcm.Data[start:])
		clear(frameIn.Data[n:])

		payload := passThrough
		if frames < len(payloads) {
			payload = payloads[frames]
		}

		err := dec.DecodeBuffer(payload, frameIn, frameOut)
		if errors.Is(err, sbr.ErrFrameOverread) {
			overreads++
		} else if err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}

		err = wavOut.Write(frameOut)
		if err != nil {
			return err
		}
		frames++
	}

	if overreads > 0 {
		log.Printf("%d of %d frames overran their payload", overreads, frames)
	}
	log.Printf("wrote %d frames to %s", frames, *output)

	return wavOut.Close()
}

func readWav(path string) (*audio.Float32Buffer, *audio.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid path %s: %w", path, err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, nil, fmt.Errorf("%s: invalid wav file", path)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	format := &audio.Format{
		NumChannels: int(decoder.NumChans),
		SampleRate:  int(decoder.SampleRate),
	}
	return pcm, format, nil
}

func readPayloads(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %s: %w", path, err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	var payloads [][]byte
	for {
		var size uint16
		err := binary.Read(r, binary.BigEndian, &size)
		if errors.Is(err, io.EOF) {
			return payloads, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: payload %d: %w", path, len(payloads), err)
		}

		payload := make([]byte, size)
		_, err = io.ReadFull(r, payload)
		if err != nil {
			return nil, fmt.Errorf("%s: payload %d: %w", path, len(payloads), err)
		}
		payloads = append(payloads, payload)
	}
}
