package tsl2561

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLux_Bands(t *testing.T) {
	tests := []struct {
		broadband uint16
		infrared  uint16
		gain      byte
		integ     byte
		expected  float64
	}{
		// ratio 0 resolves to the first band with the power term vanishing
		{1000, 0, Gain16x, Integ402ms, 30.4},
		// band boundaries, 402ms so no time scaling
		{1000, 500, Gain16x, Integ402ms, 6.906393219088827},
		{1000, 600, Gain16x, Integ402ms, 3.799999999999997},
		{1000, 700, Gain16x, Integ402ms, 2.0900000000000016},
		{1000, 1000, Gain16x, Integ402ms, 0.3400000000000001},
		// ratio above 1.30 clamps to zero
		{1000, 1400, Gain16x, Integ402ms, 0},
		// 1x gain readings scale up to the 16x baseline
		{1000, 300, Gain1x, Integ402ms, 302.5424668711382},
		// shorter exposure windows scale up by 1/0.034 and 1/0.252
		{2000, 900, Gain16x, Integ13ms, 595.7849934963807},
		{20000, 9000, Gain16x, Integ101ms, 803.8368959871806},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_%d_g%d_t%d", test.broadband, test.infrared, test.gain, test.integ), func(t *testing.T) {
			lux, err := ComputeLux(test.broadband, test.infrared, test.gain, test.integ)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, lux, 1e-9)
		})
	}
}

func TestComputeLux_ZeroChannel0(t *testing.T) {
	for gain := byte(0); gain <= 1; gain++ {
		for integ := byte(0); integ <= 3; integ++ {
			_, err := ComputeLux(0, 0, gain, integ)
			assert.ErrorIs(t, err, ErrInvalidReading, "gain %d integ %d", gain, integ)
		}
	}
}

func TestComputeLux_ClipThresholds(t *testing.T) {
	tests := []struct {
		integ byte
		clip  uint16
	}{
		{Integ13ms, 4900},
		{Integ101ms, 37000},
		{Integ402ms, 65000},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("integ%d", test.integ), func(t *testing.T) {
			// at the threshold
			_, err := ComputeLux(test.clip, 0, Gain16x, test.integ)
			assert.ErrorIs(t, err, ErrInvalidReading)
			// one above, on either channel
			_, err = ComputeLux(test.clip+1, 0, Gain16x, test.integ)
			assert.ErrorIs(t, err, ErrInvalidReading)
			_, err = ComputeLux(100, test.clip, Gain16x, test.integ)
			assert.ErrorIs(t, err, ErrInvalidReading)
			// one below is still a valid reading
			_, err = ComputeLux(test.clip-1, 0, Gain16x, test.integ)
			assert.NoError(t, err)
		})
	}
}

func TestComputeLux_ManualMode(t *testing.T) {
	_, err := ComputeLux(1000, 500, Gain16x, IntegManual)
	assert.ErrorIs(t, err, ErrInvalidReading)
}

func TestComputeLux_GainScaling(t *testing.T) {
	// same channels under 1x gain must land exactly 16 times higher,
	// whatever band the ratio selects
	tests := []struct {
		broadband uint16
		infrared  uint16
	}{
		{1000, 100},
		{1000, 550},
		{1000, 700},
		{1000, 1200},
	}
	for _, test := range tests {
		at16x, err := ComputeLux(test.broadband, test.infrared, Gain16x, Integ402ms)
		require.NoError(t, err)
		at1x, err := ComputeLux(test.broadband, test.infrared, Gain1x, Integ402ms)
		require.NoError(t, err)
		assert.Equal(t, at16x*16, at1x, "ch0 %d ch1 %d", test.broadband, test.infrared)
	}
}

func TestComputeLux_Finite(t *testing.T) {
	for _, infrared := range []uint16{0, 1, 499, 500, 501, 610, 800, 1300, 4000} {
		lux, err := ComputeLux(4000, infrared, Gain16x, Integ402ms)
		require.NoError(t, err)
		assert.False(t, lux < 0, "negative lux for ch1 %d", infrared)
	}
}
