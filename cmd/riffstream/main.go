// SPDX-License-Identifier: EPL-2.0

// Command riffstream inspects and decodes RIFF/WAVE files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ik5/riffstream/internal/logger"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	g := &globals{}

	return &cli.Command{
		Name:  "riffstream",
		Usage: "Inspect and decode RIFF/WAVE audio",
		Flags: g.flags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := g.configPath
			if path == "" {
				path = configPath()
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				return ctx, err
			}
			g.applyConfig(cmd, cfg)

			log, err := logger.NewFormat(errWriter(cmd), g.logFormat, logger.ParseLevel(g.logLevel))
			if err != nil {
				return ctx, errors.WithStack(err)
			}
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			infoCmd(g),
			chunksCmd(),
			decodeCmd(g),
			statsCmd(),
			versionCmd(),
		},
	}
}

// outWriter returns the writer commands print their results to.
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// inputs returns the positional file arguments, of which there must be at
// least one.
func inputs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, errors.Errorf("%s: missing input file", cmd.Name)
	}
	return args, nil
}
