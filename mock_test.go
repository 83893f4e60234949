package tsl2561

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLightSensor_StaticValues(t *testing.T) {
	sensor := NewMockLightSensor(
		func(ctx context.Context) (float64, error) { return 500, nil },
		func(ctx context.Context) (uint16, uint16, error) { return 0x1234, 0x0056, nil },
	)

	ctx := context.Background()
	lux, err := sensor.Lux(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, lux)

	broadband, infrared, err := sensor.Luminosity(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), broadband)
	assert.Equal(t, uint16(0x0056), infrared)

	broadband, err = sensor.Broadband(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), broadband)

	infrared, err = sensor.Infrared(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0056), infrared)
}

func TestMockLightSensor_DynamicBehavior(t *testing.T) {
	calls := 0
	sensor := NewMockLightSensor(
		func(ctx context.Context) (float64, error) {
			calls++
			return float64(calls) * 100, nil
		},
		nil,
	)

	ctx := context.Background()
	lux, err := sensor.Lux(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, lux)

	lux, err = sensor.Lux(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, lux)
}

func TestMockLightSensor_ErrorHandling(t *testing.T) {
	sensor := NewMockLightSensor(
		func(ctx context.Context) (float64, error) {
			return 0, fmt.Errorf("%w: channel 0 is zero", ErrInvalidReading)
		},
		func(ctx context.Context) (uint16, uint16, error) {
			return 0, 0, fmt.Errorf("sensor malfunction")
		},
	)

	ctx := context.Background()
	_, err := sensor.Lux(ctx)
	assert.ErrorIs(t, err, ErrInvalidReading)

	_, _, err = sensor.Luminosity(ctx)
	require.Error(t, err)
	assert.Equal(t, "sensor malfunction", err.Error())
}

func TestMockLightSensor_NilBehaviors(t *testing.T) {
	sensor := NewMockLightSensor(nil, nil)

	ctx := context.Background()
	lux, err := sensor.Lux(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lux)

	broadband, infrared, err := sensor.Luminosity(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), broadband)
	assert.Equal(t, uint16(0), infrared)
}
