// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/urfave/cli/v3"

	"github.com/ik5/riffstream/formats/wav"
	"github.com/ik5/riffstream/internal/iobuf"
	"github.com/ik5/riffstream/internal/logger"
)

// globals holds the flags shared by all commands.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	bufferMin  int
	bufferMax  int

	// outputFormat is the config file default for decode --format.
	outputFormat string
}

func (g *globals) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config file (default $XDG_CONFIG_HOME/riffstream/config.yaml)",
			Destination: &g.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &g.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &g.logFormat,
		},
		&cli.IntFlag{
			Name:        "buffer-min",
			Usage:       "lower bound of the decode buffer in bytes",
			Value:       iobuf.MinSize,
			Destination: &g.bufferMin,
		},
		&cli.IntFlag{
			Name:        "buffer-max",
			Usage:       "upper bound of the decode buffer in bytes",
			Value:       iobuf.MaxSize,
			Destination: &g.bufferMax,
		},
	}
}

// wavOptions returns the session options selected by the global flags.
func (g *globals) wavOptions(log logger.Logger) []wav.Option {
	return []wav.Option{
		wav.WithBufferLimits(g.bufferMin, g.bufferMax),
		wav.WithLogger(log.Slog()),
	}
}
