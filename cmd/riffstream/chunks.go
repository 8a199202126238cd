// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ik5/riffstream/formats/wav"
)

type chunkReport struct {
	Path   string          `json:"path"`
	Chunks []wav.ChunkInfo `json:"chunks"`
}

func chunksCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "chunks",
		Usage:     "List the top-level chunks of RIFF files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON", Destination: &asJSON},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			paths, err := inputs(c)
			if err != nil {
				return err
			}

			reports := make([]chunkReport, 0, len(paths))
			for _, path := range paths {
				chunks, err := listChunks(path)
				if err != nil {
					return err
				}
				reports = append(reports, chunkReport{Path: path, Chunks: chunks})
			}

			w := outWriter(c)
			if asJSON {
				return writeJSON(w, reports)
			}
			for _, r := range reports {
				fmt.Fprintf(w, "%s:\n", r.Path)
				for _, ch := range r.Chunks {
					fmt.Fprintf(w, "  %-4s %10d bytes at %d\n", ch.ID, ch.Size, ch.Offset)
				}
			}
			return nil
		},
	}
}

func listChunks(path string) ([]wav.ChunkInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	chunks, err := wav.ListChunks(f)
	if err != nil {
		return nil, errors.Wrapf(err, "listing chunks of %q", path)
	}
	return chunks, nil
}
