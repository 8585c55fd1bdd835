package huffman

import (
	"strings"
	"testing"

	"github.com/llehouerou/go-sbr/internal/bits"
)

var allTrees = []struct {
	name string
	tree Tree
	min  int
	max  int
}{
	{"tEnv15", tEnv15, -60, 60},
	{"fEnv15", fEnv15, -60, 60},
	{"tEnvBal15", tEnvBal15, -24, 24},
	{"fEnvBal15", fEnvBal15, -24, 24},
	{"tEnv30", tEnv30, -31, 31},
	{"fEnv30", fEnv30, -31, 31},
	{"tEnvBal30", tEnvBal30, -12, 12},
	{"fEnvBal30", fEnvBal30, -12, 12},
	{"tNoise30", tNoise30, -31, 31},
	{"tNoiseBal30", tNoiseBal30, -12, 12},
}

// codes walks a tree and returns every codeword with its value.
func codes(t Tree) map[string]int {
	out := make(map[string]int)
	var walk func(row int8, prefix string)
	walk = func(row int8, prefix string) {
		for b := 0; b < 2; b++ {
			next := t[row][b]
			code := prefix + string(rune('0'+b))
			if next < 0 {
				out[code] = int(next) + 64
				continue
			}
			walk(next, code)
		}
	}
	walk(0, "")
	return out
}

// pack turns a string of '0'/'1' into bytes, padding with zeros.
func pack(code string) []byte {
	buf := make([]byte, (len(code)+7)/8+4)
	for i, c := range code {
		if c == '1' {
			buf[i/8] |= 0x80 >> (i % 8)
		}
	}
	return buf
}

func TestTrees_Complete(t *testing.T) {
	for _, tc := range allTrees {
		t.Run(tc.name, func(t *testing.T) {
			c := codes(tc.tree)
			if want := tc.max - tc.min + 1; len(c) != want {
				t.Errorf("leaves = %d, want %d", len(c), want)
			}
			seen := make(map[int]bool)
			for code, v := range c {
				if v < tc.min || v > tc.max {
					t.Errorf("code %s: value %d outside [%d, %d]", code, v, tc.min, tc.max)
				}
				if seen[v] {
					t.Errorf("value %d appears twice", v)
				}
				seen[v] = true
			}
			if len(tc.tree) != len(c)-1 {
				t.Errorf("rows = %d, want %d for a full binary tree", len(tc.tree), len(c)-1)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, tc := range allTrees {
		t.Run(tc.name, func(t *testing.T) {
			for code, want := range codes(tc.tree) {
				r := bits.NewReader(pack(code))
				if got := Decode(r, tc.tree); got != want {
					t.Errorf("Decode(%s) = %d, want %d", code, got, want)
				}
				if r.Position() != len(code) {
					t.Errorf("Decode(%s) consumed %d bits, want %d", code, r.Position(), len(code))
				}
			}
		})
	}
}

func TestDecode_KnownCodewords(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		code string
		want int
	}{
		{"tEnv30 zero", tEnv30, "0", 0},
		{"tEnv30 minus one", tEnv30, "10", -1},
		{"tEnv30 plus one", tEnv30, "110", 1},
		{"tEnv15 zero", tEnv15, "00", 0},
		{"tEnv15 minus one", tEnv15, "01", -1},
		{"tEnv15 plus one", tEnv15, "100", 1},
		{"tNoise30 plus one", tNoise30, "10", 1},
		{"tEnvBal30 minus one", tEnvBal30, "110", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := bits.NewReader(pack(tc.code))
			if got := Decode(r, tc.tree); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDecode_Sequence(t *testing.T) {
	// 0, -1, +1, 0 in the 3.0 dB time tree.
	code := strings.Join([]string{"0", "10", "110", "0"}, "")
	r := bits.NewReader(pack(code))
	want := []int{0, -1, 1, 0}
	for i, w := range want {
		if got := Decode(r, tEnv30); got != w {
			t.Errorf("value %d = %d, want %d", i, got, w)
		}
	}
}

func TestSelectors(t *testing.T) {
	tests := []struct {
		name         string
		balance, amp bool
		wantT, wantF Tree
	}{
		{"1.5dB", false, false, tEnv15, fEnv15},
		{"3.0dB", false, true, tEnv30, fEnv30},
		{"balance 1.5dB", true, false, tEnvBal15, fEnvBal15},
		{"balance 3.0dB", true, true, tEnvBal30, fEnvBal30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gt, gf := Envelope(tc.balance, tc.amp)
			if &gt[0] != &tc.wantT[0] || &gf[0] != &tc.wantF[0] {
				t.Error("wrong tree pair")
			}
		})
	}

	nt, nf := Noise(false)
	if &nt[0] != &tNoise30[0] || &nf[0] != &fEnv30[0] {
		t.Error("Noise(false): wrong tree pair")
	}
	nt, nf = Noise(true)
	if &nt[0] != &tNoiseBal30[0] || &nf[0] != &fEnvBal30[0] {
		t.Error("Noise(true): wrong tree pair")
	}
}
