// SPDX-License-Identifier: EPL-2.0

// Package riffstream decodes uncompressed RIFF/WAVE audio into the PCM sample
// format a caller asks for.
//
// The decoder lives in formats/wav. It reads the container through any
// io.ReadSeeker (or a table of callbacks), caches the payload in one bounded
// buffer, and converts samples on the fly between unsigned 8-bit, signed
// 16/24/32-bit and 32/64-bit float formats. Reads may use buffers of any
// size: a sample cut off at the end of one Read continues at the start of
// the next.
//
// # Quick Start
//
// The simplest way to get the samples of a file is DecodeFile:
//
//	data, info, err := riffstream.DecodeFile("take1.wav", pcm.S16)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Channels, info.SampleRate, len(data))
//
// # Streaming
//
// For long files open a session and read it like any io.Reader:
//
//	f, _ := os.Open("take1.wav")
//	s, err := wav.Open(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer s.Close()
//
//	s.SetOutputFormat(pcm.Float32)
//	io.Copy(out, s)
//
// SeekSample moves to any sample frame and SetOutputFormat may be called
// between reads without losing or repeating a sample.
//
// # Float Sources
//
// wav.Decoder and aiff.Decoder implement audio.Decoder and produce an
// audio.Source of interleaved float32 samples in [-1, 1]. Registry returns
// a registry with both containers keyed by file extension.
//
// See the individual subpackages for more detailed documentation.
package riffstream
