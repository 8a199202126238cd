// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"io"
	"os"

	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ik5/riffstream/formats/wav"
	"github.com/ik5/riffstream/internal/logger"
	"github.com/ik5/riffstream/pcm"
)

type decodeJob struct {
	in     string
	out    string
	format pcm.Format
	force  bool
	start  uint64
	frames uint64
}

func decodeCmd(g *globals) *cli.Command {
	var (
		outPath string
		format  string
		force   bool
		start   int64
		frames  int64
	)

	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode WAVE files to raw interleaved PCM",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output path, - for stdout (default: input with .raw extension)",
				Destination: &outPath,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output sample format (u8, s16, s24, s32, f32, f64)",
				Value:       "s16",
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing output files",
				Destination: &force,
			},
			&cli.Int64Flag{
				Name:        "start",
				Usage:       "first sample frame to decode",
				Destination: &start,
			},
			&cli.Int64Flag{
				Name:        "frames",
				Usage:       "number of sample frames to decode (0 = to the end)",
				Destination: &frames,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			paths, err := inputs(c)
			if err != nil {
				return err
			}
			if outPath != "" && len(paths) > 1 {
				return errors.New("decode: --output needs a single input file")
			}
			if start < 0 || frames < 0 {
				return errors.Errorf("decode: negative --start or --frames")
			}

			if g.outputFormat != "" && !c.IsSet("format") {
				format = g.outputFormat
			}
			f, err := pcm.ParseFormat(format)
			if err != nil {
				return errors.WithStack(err)
			}

			log := logger.FromContext(ctx)
			for _, path := range paths {
				job := decodeJob{
					in:     path,
					out:    outPath,
					format: f,
					force:  force,
					start:  uint64(start),
					frames: uint64(frames),
				}
				if job.out == "" {
					job.out = pathutil.TrimExt(path) + ".raw"
				}

				n, err := job.run(outWriter(c), g.wavOptions(log.With("file", path)))
				if err != nil {
					return err
				}
				log.Info("decoded", "file", path, "output", job.out, "format", f, "bytes", n)
			}
			return nil
		},
	}
}

// run decodes one file. stdout receives the samples when the output path
// is "-".
func (j decodeJob) run(stdout io.Writer, opts []wav.Option) (int64, error) {
	if j.out != "-" && !j.force && osutil.Exists(j.out) {
		return 0, errors.Errorf("output file %q already present; use --force to overwrite", j.out)
	}

	r, err := os.Open(j.in)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer r.Close()

	s, err := wav.Open(r, opts...)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %q", j.in)
	}
	defer s.Close()

	if err := s.SetOutputFormat(j.format); err != nil {
		return 0, errors.WithStack(err)
	}
	if err := s.SeekSample(j.start); err != nil {
		return 0, errors.WithStack(err)
	}

	var src io.Reader = s
	if j.frames > 0 {
		blockSize := uint64(j.format.BytesPerSample() * s.Info().Channels)
		src = io.LimitReader(s, int64(j.frames*blockSize))
	}

	w := stdout
	if j.out != "-" {
		f, err := os.Create(j.out)
		if err != nil {
			return 0, errors.WithStack(err)
		}
		defer f.Close()
		w = f
	}

	n, err := io.Copy(w, src)
	if err != nil {
		return n, errors.Wrapf(err, "decoding %q", j.in)
	}
	return n, nil
}
