package stats

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// minStdDev guards against dividing by the norm of a constant vector
const minStdDev = 1e-10

// PearsonCorrelation computes the Pearson correlation between two equal-length
// vectors. Mismatched, short or constant inputs return 0
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0.0
	}
	if stat.StdDev(x, nil) < minStdDev || stat.StdDev(y, nil) < minStdDev {
		return 0.0
	}

	return stat.Correlation(x, y, nil)
}

// CircularCrossCorrelation returns c[k] = sum_i x[i] * template[(i-k) mod n]
// for every lag k, computed in the frequency domain
//
// References:
// - Oppenheim, A.V., Schafer, R.W. (2010). "Discrete-Time Signal Processing"
func CircularCrossCorrelation(x, template []float64) []float64 {
	n := len(x)
	if n == 0 || len(template) != n {
		return []float64{}
	}

	xSpectrum := fft.FFTReal(x)
	tSpectrum := fft.FFTReal(template)

	product := make([]complex128, n)
	for i := range product {
		t := tSpectrum[i]
		product[i] = xSpectrum[i] * complex(real(t), -imag(t))
	}

	inverse := fft.IFFT(product)
	result := make([]float64, n)
	for i, v := range inverse {
		result[i] = real(v)
	}

	return result
}

// CircularPearson returns the Pearson correlation between x and the template
// rotated by every lag k (template[0] aligned with x[k]). Rotation keeps the
// template's mean and variance, so one cross-correlation of the centered
// vectors divided by their norms yields all 12 (or n) coefficients at once
func CircularPearson(x, template []float64) []float64 {
	n := len(x)
	if n == 0 || len(template) != n {
		return []float64{}
	}

	xc := center(x)
	tc := center(template)

	norm := floats.Norm(xc, 2) * floats.Norm(tc, 2)
	if norm < minStdDev {
		return make([]float64, n)
	}

	scores := CircularCrossCorrelation(xc, tc)
	for i := range scores {
		scores[i] /= norm
		// Clamp floating point drift from the transform
		scores[i] = math.Max(-1, math.Min(1, scores[i]))
	}

	return scores
}

// Rotate returns template shifted right by lag positions
func Rotate(template []float64, lag int) []float64 {
	n := len(template)
	rotated := make([]float64, n)
	if n == 0 {
		return rotated
	}
	for i := range template {
		rotated[((i+lag)%n+n)%n] = template[i]
	}
	return rotated
}

func center(values []float64) []float64 {
	mean := stat.Mean(values, nil)
	centered := make([]float64, len(values))
	copy(centered, values)
	floats.AddConst(-mean, centered)
	return centered
}
