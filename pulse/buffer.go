package pulse

import (
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// smallest buffer to allocate, in bytes
const minBufferSize = 4 * 1024

// DynamicBuffer is a gpu buffer that is rewritten every frame and
// grows to fit the data written to it.
type DynamicBuffer struct {
	ctx   *Context
	label string
	usage wgpu.BufferUsage

	buffer *wgpu.Buffer

	// number of bytes written by the last call to Write
	len uint64

	// padding for writes that are not a multiple of four bytes
	scratch []byte
}

func NewDynamicBuffer(ctx *Context, label string, usage wgpu.BufferUsage) *DynamicBuffer {
	return &DynamicBuffer{
		ctx:   ctx,
		label: label,
		usage: usage | wgpu.BufferUsageCopyDst,
	}
}

// Write replaces the content of the buffer. Writing zero bytes is allowed
// and leaves the gpu buffer untouched.
func (b *DynamicBuffer) Write(data []byte) {
	b.len = uint64(len(data))

	if len(data) == 0 {
		return
	}

	// buffer writes must be a multiple of four bytes
	if padded := alignTo4(uint64(len(data))); padded != uint64(len(data)) {
		b.scratch = append(b.scratch[:0], data...)
		b.scratch = append(b.scratch, make([]byte, padded-uint64(len(data)))...)
		data = b.scratch
	}

	b.ensureCapacity(uint64(len(data)))

	b.ctx.WriteBuffer(b.buffer, 0, data)
}

// Buffer returns the underlying buffer. It is nil until the first
// non empty write.
func (b *DynamicBuffer) Buffer() *wgpu.Buffer {
	return b.buffer
}

// Len returns the number of bytes written by the last call to Write.
func (b *DynamicBuffer) Len() uint64 {
	return b.len
}

func (b *DynamicBuffer) Release() {
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}

func (b *DynamicBuffer) ensureCapacity(size uint64) {
	if b.buffer != nil && b.buffer.GetSize() >= size {
		return
	}

	capacity := nextBufferSize(size)

	slog.Debug("Grow dynamic buffer",
		slog.String("label", b.label),
		slog.Uint64("size", capacity),
	)

	b.Release()

	b.buffer = b.ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: b.label,
		Usage: b.usage,
		Size:  capacity,
	})
}

// nextBufferSize returns the next power of two that fits size bytes.
func nextBufferSize(size uint64) uint64 {
	capacity := uint64(minBufferSize)
	for capacity < size {
		capacity *= 2
	}

	return capacity
}

func alignTo4(n uint64) uint64 {
	return (n + 3) &^ 3
}

// AsByteSlice returns the memory of the given value as a byte slice.
func AsByteSlice[T any](value *T) []byte {
	n := unsafe.Sizeof(*value)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}
