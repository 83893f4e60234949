package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tsl2561/cmd/tsl2561/console"
)

var powerCmd = cli.Command{
	Name:  "power",
	Usage: "control the sensor power state",
	Subcommands: []*cli.Command{
		&powerOnCmd,
		&powerOffCmd,
	},
}

var powerOnCmd = cli.Command{
	Name:  "on",
	Flags: sensorFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		if err := s.Enable(ctx); err != nil {
			return console.Exit(1, "error powering on: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "sensor powered %s", console.Green("on"))
		return nil
	},
}

var powerOffCmd = cli.Command{
	Name:  "off",
	Flags: sensorFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		if err := s.Disable(ctx); err != nil {
			return console.Exit(1, "error powering off: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "sensor powered %s", console.Yellow("off"))
		return nil
	},
}
