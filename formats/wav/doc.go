// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE streams incrementally.
//
// A Session reads from any io.ReadSeeker (or a Callbacks table) through a
// bounded I/O buffer and converts samples to the output format on the fly.
// Read accepts buffers of any length; a sample that does not fit at the end
// of one call is completed at the start of the next.
//
// # Supported Formats
//
// Native streams:
//   - PCM unsigned 8-bit, signed 16, 24 and 32-bit
//   - IEEE float 32 and 64-bit
//   - WAVE_FORMAT_EXTENSIBLE wrapping any of the above
//
// Any of the six can be requested as output with SetOutputFormat.
//
// # Decoding
//
//	f, _ := os.Open("audio.wav")
//	s, err := wav.Open(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer s.Close()
//
//	s.SetOutputFormat(pcm.Float32)
//	buf := make([]byte, 4096)
//	n, err := s.Read(buf)
//
// A Session is an io.Reader and returns io.EOF at the end of the data
// chunk, so io.Copy works. SeekSample and Tell work in samples per channel.
//
// Decoder adapts a Session to audio.Source for use with an audio.Registry,
// and IntReader exposes it through the go-audio IntBuffer API.
//
// # Container Parsing
//
// The fmt chunk does not have to be the first chunk, and unknown chunks
// before or after it are skipped. Chunks with an odd size must be followed
// by a pad byte; streams from writers that omit it are rejected or misread.
// ListChunks lists every top-level chunk without decoding.
//
// # Error Handling
//
// Every failure has its own sentinel error, checked with errors.Is:
//
//	s, err := wav.Open(f)
//	if errors.Is(err, wav.ErrNotRIFF) {
//	    fmt.Println("Not a WAV file")
//	}
//
// Transport errors are wrapped and reach the caller unchanged.
package wav
