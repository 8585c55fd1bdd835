package syntax

import (
	"fmt"

	"github.com/llehouerou/go-sbr/internal/bits"
	"github.com/llehouerou/go-sbr/internal/huffman"
)

// bitWriter builds test bitstreams MSB first.
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
	c, ok := codeFor(t, v)
	if !ok {
		panic(fmt.Sprintf("no codeword for %d", v))
	}
	for _, b := range c {
		w.put(uint32(b-'0'), 1)
	}
	return w
}

func (w *bitWriter) reader() *bits.Reader {
	return bits.NewReader(append(w.buf, 0, 0, 0, 0))
}

func codeFor(t huffman.Tree, v int) (string, bool) {
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
	return walk(0, "")
}
