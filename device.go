package tsl2561

import (
	"context"
	"fmt"
)

// TSL2561 default 7-bit I2C address. ADDR pin floating selects 0x39;
// tying it to GND or VDD moves the device to 0x29 or 0x49.
const DefaultAddress = 0x39

// Register map (per datasheet)
const (
	regControl  byte = 0x00
	regTiming   byte = 0x01
	regID       byte = 0x0A
	regChan0Low byte = 0x0C
	regChan1Low byte = 0x0E
)

// Every transaction starts with a command byte: bit 7 selects command mode,
// bit 5 requests a word (2-byte) transaction.
const (
	commandBit byte = 0x80
	wordBit    byte = 0x20
)

// Control register values
const (
	controlPowerOn  byte = 0x03
	controlPowerOff byte = 0x00
)

// Timing register fields: bits [1:0] integration time code, bit 4 gain code.
const (
	timingIntegMask byte = 0x03
	timingGainMask  byte = 0x10
)

// Gain codes (timing register bit 4)
const (
	Gain1x  byte = 0
	Gain16x byte = 1
)

// Integration time codes (timing register bits [1:0])
const (
	Integ13ms   byte = 0 // 13.7 ms
	Integ101ms  byte = 1
	Integ402ms  byte = 2
	IntegManual byte = 3
)

// TSL2561 represents the TAOS/ams TSL2561 ambient light sensor.
// Typical usage:
//
//	s := NewTSL2561(bus)
//	err := s.Enable(ctx)
//	lux, err := s.Lux(ctx)
//
// The handle is not safe for concurrent use; callers sharing it across
// goroutines must serialize access themselves.
type TSL2561 struct {
	transport I2CBus
	address   byte
	enabled   bool
	// scratch buffer shared by all transactions; buf[0] always holds the
	// command byte, payload bytes land at buf[1:]
	buf [3]byte
}

type TSL2561Config struct {
	Address byte
}

type TSL2561ConfigOption func(*TSL2561Config)

func WithAddress(address byte) TSL2561ConfigOption {
	return func(c *TSL2561Config) {
		c.Address = address
	}
}

// NewTSL2561 creates a new TSL2561 connector with the given I2CBus transport.
// The default address 0x39 can be overridden with WithAddress.
func NewTSL2561(trans I2CBus, opts ...TSL2561ConfigOption) *TSL2561 {
	config := &TSL2561Config{
		Address: DefaultAddress,
	}
	for _, opt := range opts {
		opt(config)
	}
	return &TSL2561{transport: trans, address: config.Address}
}

// readRegister reads count (1 or 2) bytes from the given register. The
// command byte and the data bytes travel in a single bus transaction so a
// word read cannot tear between its low and high byte.
func (s *TSL2561) readRegister(ctx context.Context, reg byte, count int) error {
	s.buf[0] = commandBit | reg
	if count == 2 {
		s.buf[0] |= wordBit
	}
	err := s.transport.WriteReadFromAddr(ctx, s.address, s.buf[:1], s.buf[1:1+count])
	if err != nil {
		return fmt.Errorf("tsl2561: could not read register %#02x: %w", reg, err)
	}
	return nil
}

func (s *TSL2561) writeRegister(ctx context.Context, reg byte, value byte) error {
	s.buf[0] = commandBit | reg
	s.buf[1] = value
	err := s.transport.WriteToAddr(ctx, s.address, s.buf[:2])
	if err != nil {
		return fmt.Errorf("tsl2561: could not write register %#02x: %w", reg, err)
	}
	return nil
}

// Enable powers the sensor on.
func (s *TSL2561) Enable(ctx context.Context) error {
	if err := s.writeRegister(ctx, regControl, controlPowerOn); err != nil {
		return err
	}
	s.enabled = true
	return nil
}

// Disable powers the sensor off.
func (s *TSL2561) Disable(ctx context.Context) error {
	if err := s.writeRegister(ctx, regControl, controlPowerOff); err != nil {
		return err
	}
	s.enabled = false
	return nil
}

// Enabled reports the power state as last set through Enable/Disable. The
// cached flag is the single source of truth; the control register is not
// re-read, so a second bus master toggling power goes unnoticed.
func (s *TSL2561) Enabled() bool {
	return s.enabled
}

// ID returns the part number (high nibble) and revision (low nibble) from
// the ID register.
func (s *TSL2561) ID(ctx context.Context) (byte, byte, error) {
	if err := s.readRegister(ctx, regID, 1); err != nil {
		return 0, 0, err
	}
	return s.buf[1] >> 4 & 0x0F, s.buf[1] & 0x0F, nil
}

// Gain returns the current gain code (Gain1x or Gain16x).
func (s *TSL2561) Gain(ctx context.Context) (byte, error) {
	if err := s.readRegister(ctx, regTiming, 1); err != nil {
		return 0, err
	}
	return s.buf[1] >> 4 & 0x01, nil
}

// SetGain sets the gain code, preserving the current integration time bits.
// The read and the write are two separate bus transactions; a concurrent
// write to the timing register by another bus master is silently overwritten.
func (s *TSL2561) SetGain(ctx context.Context, gain byte) error {
	if err := s.readRegister(ctx, regTiming, 1); err != nil {
		return err
	}
	value := (s.buf[1] &^ timingGainMask) | (gain&0x01)<<4
	return s.writeRegister(ctx, regTiming, value)
}

// IntegrationTime returns the current integration time code (0..3).
func (s *TSL2561) IntegrationTime(ctx context.Context) (byte, error) {
	if err := s.readRegister(ctx, regTiming, 1); err != nil {
		return 0, err
	}
	return s.buf[1] & timingIntegMask, nil
}

// SetIntegrationTime sets the integration time code, preserving the current
// gain bit. Same read-modify-write race as SetGain.
func (s *TSL2561) SetIntegrationTime(ctx context.Context, integ byte) error {
	if err := s.readRegister(ctx, regTiming, 1); err != nil {
		return err
	}
	value := (s.buf[1] &^ timingIntegMask) | (integ & timingIntegMask)
	return s.writeRegister(ctx, regTiming, value)
}

func (s *TSL2561) readChannel(ctx context.Context, reg byte) (uint16, error) {
	if err := s.readRegister(ctx, reg, 2); err != nil {
		return 0, err
	}
	// low byte first on the wire
	return uint16(s.buf[2])<<8 | uint16(s.buf[1]), nil
}

// Broadband returns the raw visible+IR channel (channel 0) reading.
func (s *TSL2561) Broadband(ctx context.Context) (uint16, error) {
	return s.readChannel(ctx, regChan0Low)
}

// Infrared returns the raw IR-only channel (channel 1) reading.
func (s *TSL2561) Infrared(ctx context.Context) (uint16, error) {
	return s.readChannel(ctx, regChan1Low)
}

// Luminosity returns both raw channel readings, broadband first.
func (s *TSL2561) Luminosity(ctx context.Context) (uint16, uint16, error) {
	broadband, err := s.Broadband(ctx)
	if err != nil {
		return 0, 0, err
	}
	infrared, err := s.Infrared(ctx)
	if err != nil {
		return 0, 0, err
	}
	return broadband, infrared, nil
}

// Lux reads both channels and the current timing configuration and returns
// the calibrated illuminance. The error is ErrInvalidReading when the
// reading is unusable (dark channel 0, saturation, manual integration mode).
func (s *TSL2561) Lux(ctx context.Context) (float64, error) {
	if err := s.readRegister(ctx, regTiming, 1); err != nil {
		return 0, err
	}
	gain := s.buf[1] >> 4 & 0x01
	integ := s.buf[1] & timingIntegMask
	broadband, infrared, err := s.Luminosity(ctx)
	if err != nil {
		return 0, err
	}
	return ComputeLux(broadband, infrared, gain, integ)
}
