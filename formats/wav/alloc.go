// SPDX-License-Identifier: EPL-2.0

package wav

// Allocator provides the backing storage for a session's I/O buffer. Alloc
// is called once per Open and Free once per Close, or on a failed Open.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator allocates from the Go heap and leaves freeing to the garbage
// collector.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) ([]byte, error) { return make([]byte, size), nil }
func (HeapAllocator) Free([]byte)                    {}
