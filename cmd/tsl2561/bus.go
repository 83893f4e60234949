package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/tsl2561"
	"github.com/mklimuk/tsl2561/adapter"
	"github.com/mklimuk/tsl2561/i2c"
)

// flags shared by every command that talks to the sensor
func sensorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Usage:   "bus adapter: mcp2221, periph, nanopi",
			Value:   "mcp2221",
		},
		&cli.StringFlag{
			Name:  "bus",
			Usage: "bus device name (periph) or number (nanopi)",
		},
		&cli.StringFlag{
			Name:  "addr",
			Usage: "sensor address (0x29, 0x39 or 0x49)",
			Value: "0x39",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}
}

func newBus(c *cli.Context) (tsl2561.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		a := adapter.NewMCP2221()
		err := a.Init()
		if err != nil {
			return nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return a, nil
	case "periph":
		bus, err := i2c.NewGenericBus(c.String("bus"))
		if err != nil {
			return nil, fmt.Errorf("could not open periph bus: %w", err)
		}
		return bus, nil
	case "nanopi":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		busNr := -1
		if c.String("bus") != "" {
			nr, err := strconv.Atoi(c.String("bus"))
			if err != nil {
				return nil, fmt.Errorf("invalid bus number %q: %w", c.String("bus"), err)
			}
			busNr = nr
		}
		return adapter.NewGobotBus(npi, busNr), nil
	default:
		return nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
	}
}

func newSensor(c *cli.Context) (*tsl2561.TSL2561, error) {
	bus, err := newBus(c)
	if err != nil {
		return nil, err
	}
	addr, err := strconv.ParseUint(c.String("addr"), 0, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid sensor address %q: %w", c.String("addr"), err)
	}
	return tsl2561.NewTSL2561(bus, tsl2561.WithAddress(byte(addr))), nil
}
