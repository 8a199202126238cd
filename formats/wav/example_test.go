// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/riffstream/formats/wav"
	"github.com/ik5/riffstream/internal/wavtest"
	"github.com/ik5/riffstream/pcm"
)

// Example_decoding opens a stream and reads it in a format other than the
// one it is stored in.
func Example_decoding() {
	data := wavtest.PCM16(16000, 1, []int16{-16384, 0, 16384, 32767})

	s, err := wav.Open(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}
	defer s.Close()

	info := s.Info()
	fmt.Printf("%v, %d channel, %d Hz, %d samples\n", info.Format, info.Channels, info.SampleRate, info.Length)

	if err := s.SetOutputFormat(pcm.U8); err != nil {
		fmt.Printf("SetOutputFormat error: %v\n", err)
		return
	}

	out, err := io.ReadAll(s)
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}
	fmt.Println(out)
	// Output:
	// s16, 1 channel, 16000 Hz, 4 samples
	// [64 128 192 255]
}

// Example_oddReads reads with a buffer that splits samples across calls.
func Example_oddReads() {
	data := wavtest.PCM16(8000, 1, []int16{1, 2, 3})

	s, err := wav.Open(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}
	defer s.Close()

	var out []byte
	p := make([]byte, 5)
	for {
		n, err := s.Read(p)
		out = append(out, p[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			return
		}
		fmt.Printf("read %d bytes, at sample %d\n", n, s.Tell())
	}

	for i := 0; i < len(out); i += 2 {
		fmt.Print(int16(binary.LittleEndian.Uint16(out[i:])), " ")
	}
	fmt.Println()
	// Output:
	// read 5 bytes, at sample 2
	// read 1 bytes, at sample 3
	// 1 2 3
}

// Example_errorNotWAV shows handling of invalid input.
func Example_errorNotWAV() {
	_, err := wav.Open(bytes.NewReader([]byte("This is not a WAV file, just some text")))

	if errors.Is(err, wav.ErrNotRIFF) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

func ExampleListChunks() {
	data := wavtest.Build(wavtest.Layout{
		Tag:        wavtest.TagPCM,
		Channels:   2,
		SampleRate: 44100,
		Bits:       16,
		Before:     []wavtest.Chunk{{ID: "LIST", Payload: []byte("INFOpad")}},
		Data:       make([]byte, 8),
	})

	chunks, err := wav.ListChunks(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("ListChunks error: %v\n", err)
		return
	}
	for _, c := range chunks {
		fmt.Printf("%s %d bytes at %d\n", c.ID, c.Size, c.Offset)
	}
	// Output:
	// LIST 8 bytes at 12
	// fmt  16 bytes at 28
	// data 8 bytes at 52
}

func ExampleOpenCallbacks() {
	data := wavtest.PCM16(8000, 2, []int16{10, -10, 20, -20})
	pos := 0

	cb := &wav.Callbacks{
		Read: func(_ any, p []byte) (int, error) {
			n := copy(p, data[pos:])
			pos += n
			return n, nil
		},
		Seek: func(_ any, offset uint64) error {
			pos = int(offset)
			return nil
		},
		Tell: func(any) (uint64, error) {
			return uint64(pos), nil
		},
	}

	s, err := wav.OpenCallbacks(cb)
	if err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}
	defer s.Close()

	info := s.Info()
	fmt.Printf("%d channels, %v, %d samples\n", info.Channels, info.Duration(), info.Length)
	// Output: 2 channels, 250µs, 2 samples
}
