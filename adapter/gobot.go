package adapter

import (
	"context"
	"fmt"
	"sync"

	"gobot.io/x/gobot/v2/drivers/i2c"

	"github.com/mklimuk/tsl2561"
)

var _ tsl2561.I2CBus = &GobotBus{}

// GobotBus bridges a gobot platform adaptor (nanopi, raspi, ...) to the
// transport contract. Connections are opened lazily per device address and
// kept for reuse.
type GobotBus struct {
	mx        sync.Mutex
	connector i2c.Connector
	busNr     int
	conns     map[byte]i2c.Connection
}

// NewGobotBus wraps the given connector. busNr selects the platform I2C bus;
// pass a negative value to use the connector's default bus.
func NewGobotBus(connector i2c.Connector, busNr int) *GobotBus {
	if busNr < 0 {
		busNr = connector.DefaultI2cBus()
	}
	return &GobotBus{
		connector: connector,
		busNr:     busNr,
		conns:     make(map[byte]i2c.Connection),
	}
}

func (b *GobotBus) connection(address byte) (i2c.Connection, error) {
	if conn, ok := b.conns[address]; ok {
		return conn, nil
	}
	conn, err := b.connector.GetI2cConnection(int(address), b.busNr)
	if err != nil {
		return nil, fmt.Errorf("could not get i2c connection to %x on bus %d: %w", address, b.busNr, err)
	}
	b.conns[address] = conn
	return conn, nil
}

func (b *GobotBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Read(buffer)
	if err != nil {
		return fmt.Errorf("could not read from i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short read from %x: %d of %d bytes", address, n, len(buffer))
	}
	return nil
}

func (b *GobotBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	err = conn.WriteBytes(buffer)
	if err != nil {
		return fmt.Errorf("could not write to i2c bus %x: %w", address, err)
	}
	return nil
}

// WriteReadFromAddr maps register reads onto SMBus read-byte/read-word
// transfers, which the kernel executes with a repeated start. Only the
// single-command-byte forms exist in SMBus, so out must be exactly one byte
// and in one or two bytes.
func (b *GobotBus) WriteReadFromAddr(ctx context.Context, address byte, out, in []byte) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	if len(out) != 1 {
		return fmt.Errorf("%w: combined transfer needs a single command byte, got %d", ErrCommandUnsupported, len(out))
	}
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	switch len(in) {
	case 1:
		val, err := conn.ReadByteData(out[0])
		if err != nil {
			return fmt.Errorf("could not read byte from %x register %#02x: %w", address, out[0], err)
		}
		in[0] = val
	case 2:
		val, err := conn.ReadWordData(out[0])
		if err != nil {
			return fmt.Errorf("could not read word from %x register %#02x: %w", address, out[0], err)
		}
		// SMBus word order: low byte first
		in[0] = byte(val)
		in[1] = byte(val >> 8)
	default:
		return fmt.Errorf("%w: combined transfer reads 1 or 2 bytes, got %d", ErrCommandUnsupported, len(in))
	}
	return nil
}

func (b *GobotBus) Release(ctx context.Context) error {
	return nil
}

func (b *GobotBus) Close() error {
	b.mx.Lock()
	defer b.mx.Unlock()
	var firstErr error
	for addr, conn := range b.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("could not close connection to %x: %w", addr, err)
		}
		delete(b.conns, addr)
	}
	return firstErr
}
