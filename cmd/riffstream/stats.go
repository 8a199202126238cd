// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ik5/riffstream"
	"github.com/ik5/riffstream/audio"
)

type statsReport struct {
	Path       string `json:"path"`
	SampleRate int    `json:"sample_rate"`
	audio.Levels
}

func statsCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "stats",
		Usage:     "Measure peak and RMS levels of WAVE or AIFF files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON with linear levels", Destination: &asJSON},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			paths, err := inputs(c)
			if err != nil {
				return err
			}

			reg := riffstream.Registry()
			reports := make([]statsReport, 0, len(paths))
			for _, path := range paths {
				r, err := measure(reg, path)
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
				fmt.Fprintf(w, "%s: %d frames at %d Hz\n", r.Path, r.Frames, r.SampleRate)
				for ch := range r.Peak {
					fmt.Fprintf(w, "  ch %d: peak %7.2f dBFS, rms %7.2f dBFS\n", ch, r.PeakDBFS(ch), r.RMSDBFS(ch))
				}
			}
			return nil
		},
	}
}

func measure(reg *audio.Registry, path string) (statsReport, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return statsReport{}, errors.WithStack(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return statsReport{}, errors.WithStack(err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return statsReport{}, errors.Wrapf(err, "decoding %q", path)
	}
	defer src.Close()

	levels, err := audio.Measure(src)
	if err != nil {
		return statsReport{}, errors.Wrapf(err, "measuring %q", path)
	}
	return statsReport{Path: path, SampleRate: src.SampleRate(), Levels: levels}, nil
}
