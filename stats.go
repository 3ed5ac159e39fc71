package freud

import (
	"math/cmplx"

	"gonum.org/v1/gonum/stat"
)

// Magnitudes returns |psi| for every particle.
func Magnitudes(psi []complex128) []float64 {
	out := make([]float64, len(psi))
	for i, p := range psi {
		out[i] = cmplx.Abs(p)
	}
	return out
}

// MeanMagnitude returns the average |psi| over all particles, 0 for empty
// input. It measures how ordered local environments are without regard to
// whether their orientations align.
func MeanMagnitude(psi []complex128) float64 {
	if len(psi) == 0 {
		return 0
	}
	return stat.Mean(Magnitudes(psi), nil)
}

// GlobalOrder returns the arithmetic mean of psi, 0 for empty input.
// Phase-coherent order across the system survives the average; randomly
// oriented domains cancel toward zero even when each is locally ordered.
func GlobalOrder(psi []complex128) complex128 {
	if len(psi) == 0 {
		return 0
	}
	re := make([]float64, len(psi))
	im := make([]float64, len(psi))
	for i, p := range psi {
		re[i] = real(p)
		im[i] = imag(p)
	}
	return complex(stat.Mean(re, nil), stat.Mean(im, nil))
}
