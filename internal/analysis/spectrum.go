package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the magnitudes of the first half of the spectrum.
// The series is mean-centred, Hann windowed and zero padded to the next
// power of two.
func PowerSpectrum(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}

	n := nextPow2(len(series))
	x := make([]float64, len(series))
	mean := stat.Mean(series, nil)
	for i, v := range series {
		x[i] = v - mean
	}
	window.Apply(x, window.Hann)

	padded := make([]float64, n)
	copy(padded, x)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest bin above
// DC, or 0 when the series is too short or flat.
func DominantFrequency(series []float64, sampleRate float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 {
		return 0
	}

	best, bestMag := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestMag {
			best, bestMag = k, ps[k]
		}
	}
	if best == 0 {
		return 0
	}
	return BinFrequency(best, len(ps)*2, sampleRate)
}

// BinFrequency converts bin k of an n-point transform to Hz.
func BinFrequency(k, n int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(n)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
