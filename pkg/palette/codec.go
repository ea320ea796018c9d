// codec.go — Raw table serialization: concatenated R,G,B records.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash"
)

// RecordSize is the byte length of one serialized color.
const RecordSize = 3

// ErrPartialRecord means the input length is not a multiple of RecordSize.
var ErrPartialRecord = errors.New("table length is not a multiple of 3")

// Bytes returns the serialized table.
func (p Palette) Bytes() []byte {
	b := make([]byte, 0, len(p)*RecordSize)
	for _, c := range p {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

// Encode writes the table with no header, delimiter, or trailer.
func Encode(w io.Writer, p Palette) error {
	_, err := w.Write(p.Bytes())
	return err
}

// Decode reads a whole table.
func Decode(r io.Reader) (Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// FromBytes parses a serialized table.
func FromBytes(data []byte) (Palette, error) {
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%w (%d bytes)", ErrPartialRecord, len(data))
	}
	p := make(Palette, len(data)/RecordSize)
	for i := range p {
		rec := data[i*RecordSize:]
		p[i] = Color{R: rec[0], G: rec[1], B: rec[2]}
	}
	return p, nil
}

// WriteFile creates or truncates path and writes the table to it.
func WriteFile(path string, p Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Encode(w, p); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile loads a table written by WriteFile.
func ReadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Digest is the xxhash64 of the serialized table.
func Digest(p Palette) uint64 {
	return xxhash.Sum64(p.Bytes())
}
