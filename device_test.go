package tsl2561

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockI2CBus is a mock implementation of I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	// copy the scratch buffer, the caller reuses it between transactions
	args := m.Called(ctx, address, append([]byte(nil), buffer...))
	return args.Error(0)
}

func (m *MockI2CBus) WriteReadFromAddr(ctx context.Context, address byte, out, in []byte) error {
	args := m.Called(ctx, address, append([]byte(nil), out...), in)
	return args.Error(0)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// expectRegisterRead registers a combined write+read expectation answering a
// register request with the given payload bytes.
func expectRegisterRead(bus *MockI2CBus, command byte, payload ...byte) *mock.Call {
	return bus.On("WriteReadFromAddr", mock.Anything, byte(DefaultAddress), []byte{command}, mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			in := args.Get(3).([]byte)
			copy(in, payload)
		}).
		Return(nil).Once()
}

func TestTSL2561_ReadChannel(t *testing.T) {
	tests := []struct {
		name     string
		command  byte
		low      byte
		high     byte
		expected uint16
	}{
		{"broadband", 0xAC, 0x34, 0x12, 0x1234},
		{"infrared", 0xAE, 0xFF, 0x00, 0x00FF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := &MockI2CBus{}
			expectRegisterRead(bus, test.command, test.low, test.high)
			s := NewTSL2561(bus)

			var got uint16
			var err error
			if test.name == "broadband" {
				got, err = s.Broadband(context.Background())
			} else {
				got, err = s.Infrared(context.Background())
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
			bus.AssertExpectations(t)
		})
	}
}

func TestTSL2561_Power(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x80, 0x03}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x80, 0x00}).Return(nil).Once()
	s := NewTSL2561(bus)

	assert.False(t, s.Enabled())
	require.NoError(t, s.Enable(context.Background()))
	assert.True(t, s.Enabled())
	require.NoError(t, s.Disable(context.Background()))
	assert.False(t, s.Enabled())
	bus.AssertExpectations(t)
}

func TestTSL2561_PowerFailureKeepsState(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x80, 0x03}).
		Return(fmt.Errorf("nack")).Once()
	s := NewTSL2561(bus)

	err := s.Enable(context.Background())
	require.Error(t, err)
	assert.False(t, s.Enabled())
	bus.AssertExpectations(t)
}

func TestTSL2561_ID(t *testing.T) {
	bus := &MockI2CBus{}
	expectRegisterRead(bus, 0x8A, 0x15)
	s := NewTSL2561(bus)

	part, revision, err := s.ID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(1), part)
	assert.Equal(t, byte(5), revision)
	bus.AssertExpectations(t)
}

func TestTSL2561_SetGainPreservesIntegrationTime(t *testing.T) {
	bus := &MockI2CBus{}
	// current timing: 402ms integration, 1x gain
	expectRegisterRead(bus, 0x81, 0x02)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x81, 0x12}).Return(nil).Once()
	// read-back after the update
	expectRegisterRead(bus, 0x81, 0x12)
	expectRegisterRead(bus, 0x81, 0x12)
	s := NewTSL2561(bus)

	require.NoError(t, s.SetGain(context.Background(), Gain16x))
	gain, err := s.Gain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Gain16x, gain)
	integ, err := s.IntegrationTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Integ402ms, integ)
	bus.AssertExpectations(t)
}

func TestTSL2561_SetIntegrationTimePreservesGain(t *testing.T) {
	bus := &MockI2CBus{}
	// current timing: 13.7ms integration, 16x gain
	expectRegisterRead(bus, 0x81, 0x10)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x81, 0x11}).Return(nil).Once()
	s := NewTSL2561(bus)

	require.NoError(t, s.SetIntegrationTime(context.Background(), Integ101ms))
	bus.AssertExpectations(t)
}

func TestTSL2561_Lux(t *testing.T) {
	bus := &MockI2CBus{}
	// timing register: 402ms, 16x gain
	expectRegisterRead(bus, 0x81, 0x12)
	expectRegisterRead(bus, 0xAC, 0xE8, 0x03) // broadband 1000
	expectRegisterRead(bus, 0xAE, 0x00, 0x00) // infrared 0
	s := NewTSL2561(bus)

	lux, err := s.Lux(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 30.4, lux, 1e-9)
	bus.AssertExpectations(t)
}

func TestTSL2561_LuxInvalid(t *testing.T) {
	bus := &MockI2CBus{}
	expectRegisterRead(bus, 0x81, 0x12)
	expectRegisterRead(bus, 0xAC, 0x00, 0x00) // broadband 0
	expectRegisterRead(bus, 0xAE, 0x00, 0x00)
	s := NewTSL2561(bus)

	_, err := s.Lux(context.Background())
	assert.ErrorIs(t, err, ErrInvalidReading)
	bus.AssertExpectations(t)
}

func TestTSL2561_CustomAddress(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteReadFromAddr", mock.Anything, byte(0x29), []byte{0x8A}, mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			in := args.Get(3).([]byte)
			in[0] = 0x50
		}).
		Return(nil).Once()
	s := NewTSL2561(bus, WithAddress(0x29))

	part, revision, err := s.ID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(5), part)
	assert.Equal(t, byte(0), revision)
	bus.AssertExpectations(t)
}

func TestTSL2561_BusErrorPropagates(t *testing.T) {
	bus := &MockI2CBus{}
	busErr := fmt.Errorf("arbitration lost")
	bus.On("WriteReadFromAddr", mock.Anything, byte(DefaultAddress), []byte{0xAC}, mock.AnythingOfType("[]uint8")).
		Return(busErr).Once()
	s := NewTSL2561(bus)

	_, err := s.Broadband(context.Background())
	assert.ErrorIs(t, err, busErr)
	bus.AssertExpectations(t)
}
