package media

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	binaryHeaderSize = 4
	binaryRecordSize = 16
	// maxPrealloc bounds the capacity reserved from an untrusted header.
	maxPrealloc = 1 << 16
)

// ReadBinary decodes a binary path: a little-endian uint32 count followed by
// count records of two little-endian float64 values (real, imaginary).
func ReadBinary(r io.Reader) ([]complex128, error) {
	var header [binaryHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: point count: %v", ErrIncompleteRead, err)
	}
	count := binary.LittleEndian.Uint32(header[:])
	if count == 0 {
		return nil, ErrNoPoints
	}

	points := make([]complex128, 0, min(int(count), maxPrealloc))
	var rec [binaryRecordSize]byte
	for i := range count {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("%w: point %d of %d: %v", ErrIncompleteRead, i, count, err)
		}
		re := math.Float64frombits(binary.LittleEndian.Uint64(rec[0:8]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(rec[8:16]))
		points = append(points, complex(re, im))
	}
	return points, nil
}

// WriteBinary encodes points in the layout ReadBinary expects. Values are
// written bit for bit.
func WriteBinary(w io.Writer, points []complex128) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if uint64(len(points)) > math.MaxUint32 {
		return fmt.Errorf("media: %d points do not fit a binary path header", len(points))
	}

	bw := bufio.NewWriter(w)
	var header [binaryHeaderSize]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(points)))
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	var rec [binaryRecordSize]byte
	for _, p := range points {
		binary.LittleEndian.PutUint64(rec[0:8], math.Float64bits(real(p)))
		binary.LittleEndian.PutUint64(rec[8:16], math.Float64bits(imag(p)))
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadBinary reads a binary path file.
func LoadBinary(path string) ([]complex128, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening path: %w", err)
	}
	defer f.Close()

	points, err := ReadBinary(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return points, nil
}

// SaveBinary writes points to a binary path file.
func SaveBinary(path string, points []complex128) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating path: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteBinary(f, points); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
