// Package analysis inspects metric time series recorded from a running
// mesh.
//
//   - [PowerSpectrum]: magnitude spectrum of a series, zero padded to a power of two
//   - [DominantFrequency]: the strongest non-DC frequency of a series
//
// A churn series sampled once per step has a sample rate equal to the
// simulation framerate:
//
//	freq := analysis.DominantFrequency(rec.Series("churn"), cfg.Framerate)
package analysis
