package persist

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"unsafe"

	"github.com/klauspost/compress/s2"

	"github.com/hupe1980/raggo"
	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/internal/conv"
)

const (
	// magicNumber identifies raggo snapshot files (ASCII: "RAGG").
	magicNumber = 0x52414747
	// version is the current snapshot format version.
	version = 1
)

var (
	// ErrInvalidMagic is returned when the snapshot magic number is wrong.
	ErrInvalidMagic = errors.New("persist: invalid magic number")
	// ErrInvalidVersion is returned for unsupported snapshot versions.
	ErrInvalidVersion = errors.New("persist: unsupported version")
	// ErrElementSizeMismatch is returned when the snapshot was written
	// with a different element type size.
	ErrElementSizeMismatch = errors.New("persist: element size mismatch")
	// ErrCorrupt is returned when the snapshot structure is inconsistent.
	ErrCorrupt = errors.New("persist: corrupt snapshot")
)

// ChecksumMismatchError is returned when a section checksum does not
// match its contents.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("persist: checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// castagnoli is hardware-accelerated on amd64 and arm64.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Options configures Save and Load.
type Options struct {
	// Logger receives structured progress and error logs. Defaults to a
	// no-op logger.
	Logger *raggo.Logger

	// Space is the memory space the loaded container is placed in.
	// Save ignores it. Defaults to buffer.Heap.
	Space buffer.Space
}

func applyOptions(optFns []func(*Options)) Options {
	o := Options{
		Logger: raggo.NoopLogger(),
		Space:  buffer.Heap,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithLogger sets the logger used for progress and error logs.
func WithLogger(logger *raggo.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSpace sets the memory space of the container built by Load.
func WithSpace(space buffer.Space) func(*Options) {
	return func(o *Options) {
		o.Space = space
	}
}

// fileHeader is the fixed-size snapshot header, written little-endian.
type fileHeader struct {
	Magic     uint32
	Version   uint32
	ElemSize  uint32
	Reserved  uint32
	NumArrays uint64
	NumValues uint64 // total live elements across all sub-arrays
}

// sectionHeader precedes every compressed section.
type sectionHeader struct {
	UncompressedSize uint32
	CompressedSize   uint32
	Checksum         uint32 // CRC-32C of the compressed bytes
}

// Save writes a snapshot of the view to w: offsets, sizes and the live
// elements of every sub-array. Per-sub-array capacities survive the
// round trip; slack storage does not take up snapshot space.
func Save[T any](ctx context.Context, w io.Writer, v raggo.ViewConst[T], optFns ...func(*Options)) error {
	o := applyOptions(optFns)

	err := save(w, v)
	o.Logger.LogSave(ctx, v.Size(), liveCount(v), err)
	return err
}

func save[T any](w io.Writer, v raggo.ViewConst[T]) error {
	if !buffer.PointerFree[T]() {
		return buffer.ErrPointerType
	}

	n := v.Size()
	offsets := make([]int64, n+1)
	sizes := make([]int64, n)
	total := 0
	for i := 0; i < n; i++ {
		sizes[i] = int64(v.SizeOfArray(i))
		offsets[i+1] = offsets[i] + int64(v.CapacityOfArray(i))
		total += int(sizes[i])
	}

	values := make([]T, 0, total)
	for i := 0; i < n; i++ {
		values = append(values, v.Sub(i)...)
	}

	var zero T
	hdr := fileHeader{
		Magic:     magicNumber,
		Version:   version,
		ElemSize:  uint32(unsafe.Sizeof(zero)),
		NumArrays: uint64(n),
		NumValues: uint64(total),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("persist: write header: %w", err)
	}

	if err := writeSection(w, int64Bytes(offsets)); err != nil {
		return err
	}
	if err := writeSection(w, int64Bytes(sizes)); err != nil {
		return err
	}
	return writeSection(w, elemBytes(values))
}

// Load reads a snapshot written by Save and rebuilds an owning
// container with the same per-sub-array sizes and capacities.
func Load[T any](ctx context.Context, r io.Reader, optFns ...func(*Options)) (*raggo.ArrayOfArrays[T], error) {
	o := applyOptions(optFns)

	aoa, err := load[T](r, o.Space)
	if err != nil {
		o.Logger.LogLoad(ctx, 0, 0, err)
		return nil, err
	}
	o.Logger.LogLoad(ctx, aoa.Size(), liveCount(aoa.ViewConst()), nil)
	return aoa, nil
}

func load[T any](r io.Reader, space buffer.Space) (*raggo.ArrayOfArrays[T], error) {
	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("persist: read header: %w", err)
	}
	if hdr.Magic != magicNumber {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, hdr.Magic)
	}
	if hdr.Version != version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, hdr.Version)
	}
	var zero T
	if hdr.ElemSize != uint32(unsafe.Sizeof(zero)) {
		return nil, fmt.Errorf("%w: snapshot %d, element type %d", ErrElementSizeMismatch, hdr.ElemSize, unsafe.Sizeof(zero))
	}

	n, err := conv.Uint64ToInt(hdr.NumArrays)
	if err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	total, err := conv.Uint64ToInt(hdr.NumValues)
	if err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}

	offsets, err := readInt64Section(r, n+1)
	if err != nil {
		return nil, err
	}
	sizes, err := readInt64Section(r, n)
	if err != nil {
		return nil, err
	}
	raw, err := readSection(r)
	if err != nil {
		return nil, err
	}
	if len(raw) != total*int(hdr.ElemSize) {
		return nil, fmt.Errorf("%w: values section holds %d bytes, want %d", ErrCorrupt, len(raw), total*int(hdr.ElemSize))
	}
	values := elemsFromBytes[T](raw, total)

	capacities := make([]int, n)
	liveTotal := int64(0)
	if offsets[0] != 0 {
		return nil, fmt.Errorf("%w: offsets do not start at zero", ErrCorrupt)
	}
	for i := 0; i < n; i++ {
		c := offsets[i+1] - offsets[i]
		if c < 0 || sizes[i] < 0 || sizes[i] > c {
			return nil, fmt.Errorf("%w: sub-array %d has size %d and capacity %d", ErrCorrupt, i, sizes[i], c)
		}
		capacity, err := conv.Int64ToInt(c)
		if err != nil {
			return nil, fmt.Errorf("persist: %w", err)
		}
		capacities[i] = capacity
		liveTotal += sizes[i]
	}
	if liveTotal != int64(total) {
		return nil, fmt.Errorf("%w: sizes sum to %d, header says %d", ErrCorrupt, liveTotal, total)
	}

	aoa, err := raggo.New[T](0, 0, raggo.WithSpace(space))
	if err != nil {
		return nil, err
	}
	if err := aoa.ResizeFromCapacities(capacities); err != nil {
		return nil, err
	}

	v := aoa.View()
	read := 0
	for i := 0; i < n; i++ {
		size := int(sizes[i])
		v.SetSizeOfArray(i, size)
		copy(v.Window(i)[:size], values[read:read+size])
		read += size
	}
	return aoa, nil
}

func writeSection(w io.Writer, raw []byte) error {
	comp := s2.Encode(nil, raw)
	hdr := sectionHeader{
		UncompressedSize: uint32(len(raw)),
		CompressedSize:   uint32(len(comp)),
		Checksum:         crc32.Checksum(comp, castagnoli),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("persist: write section header: %w", err)
	}
	if _, err := w.Write(comp); err != nil {
		return fmt.Errorf("persist: write section: %w", err)
	}
	return nil
}

func readSection(r io.Reader) ([]byte, error) {
	var hdr sectionHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("persist: read section header: %w", err)
	}

	comp := make([]byte, hdr.CompressedSize)
	if _, err := io.ReadFull(r, comp); err != nil {
		return nil, fmt.Errorf("persist: read section: %w", err)
	}
	if actual := crc32.Checksum(comp, castagnoli); actual != hdr.Checksum {
		return nil, &ChecksumMismatchError{Expected: hdr.Checksum, Actual: actual}
	}

	raw, err := s2.Decode(nil, comp)
	if err != nil {
		return nil, fmt.Errorf("persist: decompress section: %w", err)
	}
	if len(raw) != int(hdr.UncompressedSize) {
		return nil, fmt.Errorf("%w: section decompressed to %d bytes, want %d", ErrCorrupt, len(raw), hdr.UncompressedSize)
	}
	return raw, nil
}

func readInt64Section(r io.Reader, count int) ([]int64, error) {
	raw, err := readSection(r)
	if err != nil {
		return nil, err
	}
	if len(raw) != count*8 {
		return nil, fmt.Errorf("%w: section holds %d bytes, want %d", ErrCorrupt, len(raw), count*8)
	}
	out := make([]int64, count)
	if count > 0 {
		copy(out, unsafe.Slice((*int64)(unsafe.Pointer(&raw[0])), count))
	}
	return out, nil
}

func int64Bytes(s []int64) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*8)
}

func elemBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

func elemsFromBytes[T any](raw []byte, count int) []T {
	if count == 0 {
		return nil
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return make([]T, count)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), count)
}

func liveCount[T any](v raggo.ViewConst[T]) int {
	total := 0
	for i := 0; i < v.Size(); i++ {
		total += v.SizeOfArray(i)
	}
	return total
}
