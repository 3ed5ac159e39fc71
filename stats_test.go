package freud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitudes(t *testing.T) {
	psi := []complex128{0, complex(3, 4), complex(0, -1)}
	assert.Equal(t, []float64{0, 5, 1}, Magnitudes(psi))
}

func TestMeanMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, MeanMagnitude(nil))

	psi := []complex128{1, complex(0, 1), -1}
	assert.InDelta(t, 1.0, MeanMagnitude(psi), 1e-12)

	psi = []complex128{complex(3, 4), 0}
	assert.InDelta(t, 2.5, MeanMagnitude(psi), 1e-12)
}

func TestGlobalOrder(t *testing.T) {
	assert.Equal(t, complex(0, 0), GlobalOrder(nil))

	psi := []complex128{1, complex(0, 1)}
	got := GlobalOrder(psi)
	assert.InDelta(t, 0.5, real(got), 1e-12)
	assert.InDelta(t, 0.5, imag(got), 1e-12)

	// Opposed phases cancel even though each value has unit magnitude.
	psi = []complex128{1, -1}
	assert.Equal(t, complex(0, 0), GlobalOrder(psi))
}
