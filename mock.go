package tsl2561

import (
	"context"
)

// LuxBehaviorFunc defines the function signature for lux behavior.
// It returns the computed lux value or an error.
type LuxBehaviorFunc func(ctx context.Context) (float64, error)

// LuminosityBehaviorFunc defines the function signature for raw channel
// behavior. It returns the broadband and infrared readings or an error.
type LuminosityBehaviorFunc func(ctx context.Context) (uint16, uint16, error)

// MockLightSensor is a mock implementation of a two-channel light sensor
// that uses behavior functions to produce results without requiring any
// hardware. The lux behavior is called by Lux, the luminosity behavior by
// Broadband, Infrared and Luminosity.
//
// Example usage:
//
//	// Static value
//	sensor := NewMockLightSensor(
//		func(ctx context.Context) (float64, error) { return 500, nil },
//		func(ctx context.Context) (uint16, uint16, error) { return 0x1234, 0x0056, nil },
//	)
//
//	// Error simulation
//	sensor := NewMockLightSensor(
//		func(ctx context.Context) (float64, error) { return 0, ErrInvalidReading },
//		nil,
//	)
type MockLightSensor struct {
	luxBehavior        LuxBehaviorFunc
	luminosityBehavior LuminosityBehaviorFunc
}

// NewMockLightSensor creates a new mock light sensor with the given behavior
// functions. A nil behavior makes the corresponding methods return zero values.
func NewMockLightSensor(luxBehavior LuxBehaviorFunc, luminosityBehavior LuminosityBehaviorFunc) *MockLightSensor {
	return &MockLightSensor{
		luxBehavior:        luxBehavior,
		luminosityBehavior: luminosityBehavior,
	}
}

// Lux returns the lux value by calling the lux behavior function.
func (m *MockLightSensor) Lux(ctx context.Context) (float64, error) {
	if m.luxBehavior == nil {
		return 0, nil
	}
	return m.luxBehavior(ctx)
}

// Broadband returns the broadband channel by calling the luminosity behavior.
func (m *MockLightSensor) Broadband(ctx context.Context) (uint16, error) {
	broadband, _, err := m.Luminosity(ctx)
	return broadband, err
}

// Infrared returns the infrared channel by calling the luminosity behavior.
func (m *MockLightSensor) Infrared(ctx context.Context) (uint16, error) {
	_, infrared, err := m.Luminosity(ctx)
	return infrared, err
}

// Luminosity returns both raw channels by calling the luminosity behavior.
func (m *MockLightSensor) Luminosity(ctx context.Context) (uint16, uint16, error) {
	if m.luminosityBehavior == nil {
		return 0, 0, nil
	}
	return m.luminosityBehavior(ctx)
}
