// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// audio.NewPCMSource to deliver float32 samples, the same path the WAV
// decoder takes through its integer reader. It is registered next to WAV so
// that tools working on uncompressed PCM accept both containers.
//
// # Supported Formats
//
//   - Uncompressed AIFF with 8, 16, 24 or 32-bit samples
//   - Any channel count and sample rate
//
// Compressed AIFF-C files are not supported.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Inputs that do not implement io.Seeker are read into memory first.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: The file has no usable channel layout
package aiff
