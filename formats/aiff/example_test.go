// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/riffstream/audio"
	"github.com/ik5/riffstream/formats/aiff"
)

// Example writes a short stereo AIFF file and decodes it again.
func Example() {
	f, err := os.CreateTemp("", "example-*.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	enc := goaiff.NewEncoder(f, 44100, 16, 2)
	if err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		Data:           []int{0, 0, 16384, -16384, 8192, -32768},
		SourceBitDepth: 16,
	}); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		log.Fatal(err)
	}

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	buf := make([]float32, 8)
	n, _ := src.ReadSamples(buf)
	fmt.Printf("Read %d samples: %v\n", n, buf[:n])

	// Output:
	// Sample Rate: 44100 Hz
	// Channels: 2
	// Read 6 samples: [0 0 0.5 -0.5 0.25 -1]
}

// ExampleDecoder_Decode_registry decodes through a registry keyed by file
// extension.
func ExampleDecoder_Decode_registry() {
	reg := audio.NewRegistry()
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	dec, err := reg.ForPath("take1.AIFF")
	if err != nil {
		log.Fatal(err)
	}
	_, err = dec.Decode(bytes.NewReader([]byte("not an aiff file")))
	fmt.Println(errors.Is(err, aiff.ErrNotAiffFile))
	// Output: true
}
