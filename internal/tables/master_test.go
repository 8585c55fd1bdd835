package tables

import (
	"errors"
	"slices"
	"testing"
)

func TestStartStopChannel(t *testing.T) {
	tests := []struct {
		name       string
		startFreq  int
		stopFreq   int
		mode       bool
		sampleRate uint32
		wantK0     int
		wantK2     int
	}{
		{"44.1k start 7 stop 15", 7, 15, true, 44100, 16, 48},
		{"44.1k start 7 stop 14", 7, 14, true, 44100, 16, 32},
		{"48k start 5 stop 9", 5, 9, true, 48000, 13, 45},
		{"32k start 5 stop 9", 5, 9, true, 32000, 17, 52},
		{"22.05k start 5 stop 9", 5, 9, true, 22050, 17, 52},
		{"44.1k start 0 single rate", 0, 0, false, 44100, 12, 23},
		{"96k start 15 stop 13", 15, 13, true, 96000, 31, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k0 := StartChannel(tt.startFreq, tt.mode, tt.sampleRate)
			if k0 != tt.wantK0 {
				t.Errorf("StartChannel = %d, want %d", k0, tt.wantK0)
			}
			if k2 := StopChannel(tt.stopFreq, tt.sampleRate, k0); k2 != tt.wantK2 {
				t.Errorf("StopChannel = %d, want %d", k2, tt.wantK2)
			}
		})
	}
}

func TestMasterFrequencyTable(t *testing.T) {
	tests := []struct {
		name       string
		k0, k2     int
		freqScale  int
		alterScale bool
		want       []int
	}{
		{
			name: "two regions, 10 bands per octave",
			k0:   16, k2: 48, freqScale: 2,
			want: []int{16, 17, 18, 19, 20, 22, 24, 26, 28, 30, 32, 35, 39, 43, 48},
		},
		{
			name: "two regions, 12 bands per octave",
			k0:   17, k2: 52, freqScale: 1,
			want: []int{17, 18, 19, 20, 21, 22, 23, 24, 26, 28, 30, 32, 34, 36, 39, 42, 45, 48, 52},
		},
		{
			name: "two regions, 8 bands per octave",
			k0:   17, k2: 52, freqScale: 3,
			want: []int{17, 18, 20, 22, 24, 26, 28, 31, 34, 38, 42, 47, 52},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MasterFrequencyTable(tt.k0, tt.k2, tt.freqScale, tt.alterScale)
			if err != nil {
				t.Fatalf("MasterFrequencyTable: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMasterFrequencyTableFs0(t *testing.T) {
	tests := []struct {
		name       string
		k0, k2     int
		alterScale bool
		want       []int
	}{
		{"single channel bands", 10, 20, false, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"paired bands, narrow first", 10, 21, true, []int{10, 11, 13, 15, 17, 19, 21}},
		{"paired bands, wide last", 10, 23, true, []int{10, 12, 14, 16, 18, 20, 23}},
		{"odd span", 13, 45, true, []int{13, 15, 17, 19, 21, 23, 25, 27, 29, 31, 33, 35, 37, 39, 41, 43, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MasterFrequencyTableFs0(tt.k0, tt.k2, tt.alterScale)
			if err != nil {
				t.Fatalf("MasterFrequencyTableFs0: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMasterFrequencyTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() ([]int, error)
	}{
		{"fs0 k2 equals k0", func() ([]int, error) { return MasterFrequencyTableFs0(20, 20, false) }},
		{"fs0 k2 below k0", func() ([]int, error) { return MasterFrequencyTableFs0(30, 20, true) }},
		{"fs0 single channel span", func() ([]int, error) { return MasterFrequencyTableFs0(20, 21, false) }},
		{"log k2 below k0", func() ([]int, error) { return MasterFrequencyTable(30, 20, 1, false) }},
		{"log bad scale", func() ([]int, error) { return MasterFrequencyTable(16, 48, 4, false) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.fn(); !errors.Is(err, ErrMasterTable) {
				t.Errorf("err = %v, want ErrMasterTable", err)
			}
		})
	}
}
