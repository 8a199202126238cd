// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ik5/riffstream/formats/wav"
	"github.com/ik5/riffstream/internal/logger"
)

type infoReport struct {
	Path          string  `json:"path"`
	Format        string  `json:"format"`
	Channels      int     `json:"channels"`
	SampleRate    int     `json:"sample_rate"`
	BitsPerSample int     `json:"bits_per_sample"`
	Frames        uint64  `json:"frames"`
	Seconds       float64 `json:"seconds"`
}

func infoCmd(g *globals) *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "info",
		Usage:     "Print the stream format of WAVE files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON", Destination: &asJSON},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			paths, err := inputs(c)
			if err != nil {
				return err
			}
			log := logger.FromContext(ctx)

			reports := make([]infoReport, 0, len(paths))
			for _, path := range paths {
				r, err := readInfo(path, g.wavOptions(log.With("file", path)))
				if err != nil {
					return err
				}
				reports = append(reports, r)
			}

			w := outWriter(c)
			if asJSON {
				return writeJSON(w, reports)
			}
			for _, r := range reports {
				fmt.Fprintf(w, "%s: %s, %d ch, %d Hz, %d bits, %d frames (%.3fs)\n",
					r.Path, r.Format, r.Channels, r.SampleRate, r.BitsPerSample, r.Frames, r.Seconds)
			}
			return nil
		},
	}
}

func readInfo(path string, opts []wav.Option) (infoReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return infoReport{}, errors.WithStack(err)
	}
	defer f.Close()

	s, err := wav.Open(f, opts...)
	if err != nil {
		return infoReport{}, errors.Wrapf(err, "opening %q", path)
	}
	defer s.Close()

	info := s.Info()
	return infoReport{
		Path:          path,
		Format:        info.Format.String(),
		Channels:      info.Channels,
		SampleRate:    info.SampleRate,
		BitsPerSample: info.BitsPerSample,
		Frames:        info.Length,
		Seconds:       info.Duration().Seconds(),
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.WithStack(enc.Encode(v))
}
