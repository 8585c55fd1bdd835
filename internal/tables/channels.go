package tables

var startMin = [12]int{7, 7, 10, 11, 12, 16, 16, 17, 24, 32, 35, 48}

var startOffsetIndex = [12]int{5, 5, 4, 4, 4, 3, 2, 1, 0, 6, 6, 6}

var startOffset = [7][16]int{
	{-8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7},
	{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13},
	{-5, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16},
	{-6, -4, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16},
	{-4, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16, 20},
	{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16, 20, 24},
	{0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16, 20, 24, 28, 33},
}

var stopMin = [12]int{13, 15, 20, 21, 23, 32, 32, 35, 48, 64, 70, 96}

var stopOffset = [12][14]int{
	{0, 2, 4, 6, 8, 11, 14, 18, 22, 26, 31, 37, 44, 51},
	{0, 2, 4, 6, 8, 11, 14, 18, 22, 26, 31, 36, 42, 49},
	{0, 2, 4, 6, 8, 11, 14, 17, 21, 25, 29, 34, 39, 44},
	{0, 2, 4, 6, 8, 11, 14, 17, 20, 24, 28, 33, 38, 43},
	{0, 2, 4, 6, 8, 11, 14, 17, 20, 24, 28, 32, 36, 41},
	{0, 2, 4, 6, 8, 10, 12, 14, 17, 20, 23, 26, 29, 32},
	{0, 2, 4, 6, 8, 10, 12, 14, 17, 20, 23, 26, 29, 32},
	{0, 1, 3, 5, 7, 9, 11, 13, 15, 17, 20, 23, 26, 29},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 14, 16},
	{0, -1, -2, -3, -4, -5, -6, -6, -6, -6, -6, -6, -6, -6},
	{0, -3, -6, -9, -12, -15, -18, -20, -22, -24, -26, -28, -30, -32},
	{0, -4, -8, -12, -16, -20, -24, -28, -32, -36, -40, -44, -48, -52},
}

// StartChannel returns k0, the first QMF channel of the master table, for a
// 4-bit bs_start_freq at the given SBR sample rate.
// Source: ISO/IEC 14496-3, 4.6.18.3.2 (start and stop frequency)
func StartChannel(startFreq int, samplerateMode bool, sampleRate uint32) int {
	sr := GetSRIndex(sampleRate)
	row := 6
	if samplerateMode {
		row = startOffsetIndex[sr]
	}
	return startMin[sr] + startOffset[row][startFreq&15]
}

// StopChannel returns k2, the channel just above the master table, for a
// 4-bit bs_stop_freq.
// Source: ISO/IEC 14496-3, 4.6.18.3.2 (start and stop frequency)
func StopChannel(stopFreq int, sampleRate uint32, k0 int) int {
	switch stopFreq {
	case 15:
		return min(64, 3*k0)
	case 14:
		return min(64, 2*k0)
	}
	sr := GetSRIndex(sampleRate)
	return min(64, stopMin[sr]+stopOffset[sr][min(stopFreq, 13)])
}
