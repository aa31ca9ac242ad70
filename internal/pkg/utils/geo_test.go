package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{22, 22},
		{360, 0},
		{371, 11},
		{359.5 + 12, 11.5},
		{-1, 359},
		{-360, 0},
		{-1e-20, 0},
		{720, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDegrees(tt.in), "input %v", tt.in)
	}
}
