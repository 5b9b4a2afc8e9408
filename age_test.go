package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertFRESClamps(t *testing.T) {
	assert.Equal(t, 24.0, ConvertFRES(20))
	assert.Equal(t, 10.0, ConvertFRES(110))
}

func TestConvertARIClamps(t *testing.T) {
	assert.Equal(t, 5.0, ConvertARI(0))
	assert.Equal(t, 24.0, ConvertARI(20))
}

func TestConvertGFIClamps(t *testing.T) {
	assert.Equal(t, 11.0, ConvertGFI(3))
	assert.Equal(t, 24.0, ConvertGFI(20))
}

func TestConvertBreakpoints(t *testing.T) {
	assert.InDelta(t, 24, ConvertFRES(30), 1e-9)
	assert.InDelta(t, 10, ConvertFRES(100), 1e-9)
	assert.InDelta(t, 15, ConvertFRES(60), 1e-9)
	assert.InDelta(t, 5, ConvertARI(1), 1e-9)
	assert.InDelta(t, 24, ConvertARI(14), 1e-9)
	assert.InDelta(t, 11, ConvertGFI(6), 1e-9)
	assert.InDelta(t, 24, ConvertGFI(17), 1e-9)
}

func TestConvertInterpolatesLinearly(t *testing.T) {
	// Midway between (50, 18) and (60, 15).
	assert.InDelta(t, 16.5, ConvertFRES(55), 1e-9)
	// Midway between (3, 7) and (4, 9).
	assert.InDelta(t, 8, ConvertARI(3.5), 1e-9)
	// Midway between (12, 17) and (13, 19).
	assert.InDelta(t, 18, ConvertGFI(12.5), 1e-9)
	// Quarter of the way between (80, 12) and (90, 11).
	assert.InDelta(t, 11.75, ConvertFRES(82.5), 1e-9)
}
