package sbr

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/llehouerou/go-sbr/internal/huffman"
	"github.com/llehouerou/go-sbr/internal/syntax"
	"github.com/llehouerou/go-sbr/internal/tables"
)

// bitWriter builds test payloads MSB first.
type bitWriter struct {
	buf []byte
	n   int
}

func (w *bitWriter) put(v uint32, n int) *bitWriter {
	for i := n - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>uint(i)&1 == 1 {
			w.buf[w.n/8] |= 0x80 >> (w.n % 8)
		}
		w.n++
	}
	return w
}

func (w *bitWriter) flag(b bool) *bitWriter {
	if b {
		return w.put(1, 1)
	}
	return w.put(0, 1)
}

// code writes the Huffman codeword for v.
func (w *bitWriter) code(t huffman.Tree, v int) *bitWriter {
	var walk func(row int8, prefix string) (string, bool)
	walk = func(row int8, prefix string) (string, bool) {
		for b := range 2 {
			next := t[row][b]
			code := prefix + string(rune('0'+b))
			if next < 0 {
				if int(next)+64 == v {
					return code, true
				}
				continue
			}
			if c, ok := walk(next, code); ok {
				return c, true
			}
		}
		return "", false
	}
	c, ok := walk(0, "")
	if !ok {
		panic(fmt.Sprintf("no codeword for %d", v))
	}
	for _, b := range c {
		w.put(uint32(b-'0'), 1)
	}
	return w
}

const testRate = 44100

// testBands derives the tables the test headers select: stop frequency 15
// and the default optional header fields.
func testBands(t *testing.T, startFreq int) *tables.Bands {
	t.Helper()
	h := syntax.DefaultHeader()
	h.StartFreq, h.StopFreq = startFreq, 15
	b, err := tables.Derive(h.Params(), testRate)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	return b
}

func writeHeader(w *bitWriter, startFreq, stopFreq int) {
	w.put(0, 1) // bs_amp_res
	w.put(uint32(startFreq), 4).put(uint32(stopFreq), 4)
	w.put(0, 3)           // bs_xover_band
	w.put(0, 2)           // bs_reserved
	w.put(0, 1).put(0, 1) // no optional header parts
}

// writeEnvelope writes one low resolution FixFix envelope with flat values
// e0 and q0, frequency coded.
func writeEnvelope(w *bitWriter, b *tables.Bands, e0, q0 uint32) {
	_, fEnv := huffman.Envelope(false, false)
	_, fNoise := huffman.Noise(false)
	w.put(e0, 7)
	for range b.NLow - 1 {
		w.code(fEnv, 0)
	}
	w.put(q0, 5)
	for range b.NQ - 1 {
		w.code(fNoise, 0)
	}
}

type sceOptions struct {
	header    bool
	startFreq int
	stopFreq  int
	crc       bool
	e0, q0    uint32
	ps        bool // append one parametric stereo element of 6 bits
}

func scePayload(t *testing.T, o sceOptions) []byte {
	t.Helper()
	if o.stopFreq == 0 {
		o.stopFreq = 15
	}
	h := syntax.DefaultHeader()
	h.StartFreq, h.StopFreq = o.startFreq, o.stopFreq
	b, err := tables.Derive(h.Params(), testRate)
	if err != nil {
		// The decoder rejects the header and skips the data.
		b = testBands(t, 7)
	}

	w := new(bitWriter)
	if o.crc {
		w.put(uint32(syntax.ExtSBRDataCRC), 4).put(0x2a5, 10)
	} else {
		w.put(uint32(syntax.ExtSBRData), 4)
	}
	w.flag(o.header)
	if o.header {
		writeHeader(w, o.startFreq, o.stopFreq)
	}

	w.put(0, 1)                     // bs_data_extra
	w.put(0, 2).put(0, 2).put(0, 1) // FixFix, 1 envelope, low resolution
	w.put(0, 1).put(0, 1)           // dtdf
	w.put(0, 2*b.NQ)                // invf
	writeEnvelope(w, b, o.e0, o.q0)
	w.put(0, 1) // bs_add_harmonic_flag

	w.flag(o.ps) // bs_extended_data
	if o.ps {
		w.put(1, 4) // one byte
		w.put(syntax.ExtensionIDPS, 2)
		w.put(0x15, 6)
	}
	return w.buf
}

// coupledPayload writes a CPE frame with coupling, flat envelope e0 and
// noise q0, and centred balance.
func coupledPayload(t *testing.T, e0, q0 uint32) []byte {
	t.Helper()
	b := testBands(t, 7)
	_, fBal := huffman.Envelope(true, false)
	_, fNoiseBal := huffman.Noise(true)

	w := new(bitWriter)
	w.put(uint32(syntax.ExtSBRData), 4)
	w.put(1, 1)
	writeHeader(w, 7, 15)

	w.put(0, 1) // bs_data_extra
	w.put(1, 1) // bs_coupling
	w.put(0, 2).put(0, 2).put(0, 1)
	w.put(0, 2).put(0, 2) // dtdf, both channels
	w.put(0, 2*b.NQ)      // invf
	writeEnvelope(w, b, e0, q0)

	w.put(12, 6) // centre
	for range b.NLow - 1 {
		w.code(fBal, 0)
	}
	w.put(6, 5) // centre in doubled units
	for range b.NQ - 1 {
		w.code(fNoiseBal, 0)
	}

	w.put(0, 1).put(0, 1) // bs_add_harmonic_flag, both channels
	w.put(0, 1)           // bs_extended_data
	return w.buf
}

// noHeaderPayload is an SBR payload without a header, as seen before the
// first header of a stream.
var noHeaderPayload = []byte{byte(syntax.ExtSBRData) << 4}

// noiseFrames returns frames of uniform noise in the 16-bit range.
func noiseFrames(seed int64, frames, frameLength int) [][]float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float32, frames)
	for f := range out {
		out[f] = make([]float32, frameLength)
		for i := range out[f] {
			out[f][i] = float32(rng.Float64()*2000 - 1000)
		}
	}
	return out
}

func newTestDecoder(t *testing.T, cfg Config) *Decoder {
	t.Helper()
	if cfg.SampleRate == 0 {
		cfg.SampleRate = testRate
	}
	d, err := NewDecoder(cfg)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	return d
}

func makeOutput(d *Decoder) [][]float32 {
	out := make([][]float32, d.Channels())
	for ch := range out {
		out[ch] = make([]float32, d.OutputLength())
	}
	return out
}
