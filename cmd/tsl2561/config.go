package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tsl2561"
	"github.com/mklimuk/tsl2561/cmd/tsl2561/console"
)

func parseCode(c *cli.Context, max uint64) (byte, error) {
	if c.NArg() < 1 {
		return 0, fmt.Errorf("missing value argument")
	}
	val, err := strconv.ParseUint(c.Args().Get(0), 0, 8)
	if err != nil || val > max {
		return 0, fmt.Errorf("invalid value %q (expected 0..%d)", c.Args().Get(0), max)
	}
	return byte(val), nil
}

var gainNames = map[byte]string{
	tsl2561.Gain1x:  "1x",
	tsl2561.Gain16x: "16x",
}

var integNames = map[byte]string{
	tsl2561.Integ13ms:   "13.7ms",
	tsl2561.Integ101ms:  "101ms",
	tsl2561.Integ402ms:  "402ms",
	tsl2561.IntegManual: "manual",
}

var gainCmd = cli.Command{
	Name:  "gain",
	Usage: "read or set the analog gain",
	Subcommands: []*cli.Command{
		{
			Name:  "get",
			Flags: sensorFlags(),
			Action: func(c *cli.Context) error {
				ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
				s, err := newSensor(c)
				if err != nil {
					return console.Exit(1, "%s", console.Red(err))
				}
				gain, err := s.Gain(ctx)
				if err != nil {
					return console.Exit(1, "error reading gain: %s", console.Red(err))
				}
				console.PInfof(console.PictoGauge, "gain: %s", console.White(gainNames[gain]))
				return nil
			},
		},
		{
			Name:      "set",
			ArgsUsage: "<0|1>",
			Flags:     sensorFlags(),
			Action: func(c *cli.Context) error {
				ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
				gain, err := parseCode(c, 1)
				if err != nil {
					return console.Exit(1, "%s", console.Red(err))
				}
				s, err := newSensor(c)
				if err != nil {
					return console.Exit(1, "%s", console.Red(err))
				}
				if err := s.SetGain(ctx, gain); err != nil {
					return console.Exit(1, "error setting gain: %s", console.Red(err))
				}
				console.PInfof(console.PictoGauge, "gain set to %s", console.White(gainNames[gain]))
				return nil
			},
		},
	},
}

var timingCmd = cli.Command{
	Name:  "timing",
	Usage: "read or set the integration time",
	Subcommands: []*cli.Command{
		{
			Name:  "get",
			Flags: sensorFlags(),
			Action: func(c *cli.Context) error {
				ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
				s, err := newSensor(c)
				if err != nil {
					return console.Exit(1, "%s", console.Red(err))
				}
				integ, err := s.IntegrationTime(ctx)
				if err != nil {
					return console.Exit(1, "error reading integration time: %s", console.Red(err))
				}
				console.PInfof(console.PictoGauge, "integration time: %s", console.White(integNames[integ]))
				return nil
			},
		},
		{
			Name:      "set",
			ArgsUsage: "<0|1|2|3>",
			Flags:     sensorFlags(),
			Action: func(c *cli.Context) error {
				ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
				integ, err := parseCode(c, 3)
				if err != nil {
					return console.Exit(1, "%s", console.Red(err))
				}
				if integ == tsl2561.IntegManual {
					answer, err := console.YesOrNo("manual integration mode makes lux computation unavailable, continue?")
					if err != nil {
						return console.Exit(1, "%s", console.Red(err))
					}
					if answer != console.Yes {
						return nil
					}
				}
				s, err := newSensor(c)
				if err != nil {
					return console.Exit(1, "%s", console.Red(err))
				}
				if err := s.SetIntegrationTime(ctx, integ); err != nil {
					return console.Exit(1, "error setting integration time: %s", console.Red(err))
				}
				console.PInfof(console.PictoGauge, "integration time set to %s", console.White(integNames[integ]))
				return nil
			},
		},
	},
}
