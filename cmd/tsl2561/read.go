package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tsl2561"
	"github.com/mklimuk/tsl2561/cmd/tsl2561/console"
)

var readCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Usage:   "read raw channels and computed lux",
	Flags:   sensorFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		broadband, infrared, err := s.Luminosity(ctx)
		if err != nil {
			return console.Exit(1, "error reading channels: %s", console.Red(err))
		}
		console.PInfof(console.PictoSun, "broadband: %s", console.White(broadband))
		console.PInfof(console.PictoMoon, "infrared:  %s", console.White(infrared))
		lux, err := s.Lux(ctx)
		if errors.Is(err, tsl2561.ErrInvalidReading) {
			console.Warnf("lux unavailable: %s", err)
			return nil
		}
		if err != nil {
			return console.Exit(1, "error computing lux: %s", console.Red(err))
		}
		console.PInfof(console.PictoBulb, "%s lux", console.White(lux))
		return nil
	},
}
