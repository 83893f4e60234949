package tsl2561

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// AddressableWriterReader performs an addressed write immediately followed by
// an addressed read without releasing the bus in between (repeated start).
// Multi-byte register reads rely on this to come back untorn.
type AddressableWriterReader interface {
	WriteReadFromAddr(ctx context.Context, address byte, out, in []byte) error
}

type I2CBus interface {
	AddressableReader
	AddressableWriter
	AddressableWriterReader
}
