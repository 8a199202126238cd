// SPDX-License-Identifier: EPL-2.0

// Package audio defines the float sample stream shared by the container
// decoders.
//
// # Source Interface
//
// Decoders produce a Source of interleaved float32 samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// NewPCMSource builds a Source from any reader with the go-audio
// Format/PCMBuffer method pair, so integer decoders only have to supply
// samples and their bit depth.
//
// # Format Registry
//
// The registry selects a decoder by container name or file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take1.wav")
//
// # Levels
//
// Measure drains a Source and reports peak and RMS per channel, with dBFS
// helpers on the result.
package audio
