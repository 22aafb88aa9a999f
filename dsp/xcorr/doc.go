// Package xcorr provides full linear cross-correlation of real signals.
//
// The correlation of a and b has length len(a)+len(b)-1; output index k
// corresponds to lag k-(len(b)-1), so the zero-lag value of two equal-length
// signals sits at the center of the result.
//
// [Correlate] automatically selects a direct time-domain computation for
// short signals and an FFT-based path for longer ones:
//
//	corr, err := xcorr.Correlate(a, b)
//	idx, peak := xcorr.FindPeak(corr)
//	lag := xcorr.LagFromIndex(idx, len(b))
//
// The direct path is O(N*M); the FFT path is O(L log L) with L the padded
// transform size and is the better choice once both signals exceed roughly
// a hundred samples.
package xcorr
