package palette

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestEncodeLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Palette{{1, 2, 3}, {250, 251, 252}}); err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 2, 3, 250, 251, 252}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encode = %v, want %v", buf.Bytes(), want)
	}
}

func TestDecodePartialRecord(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{1, 2, 3, 4}))
	if !errors.Is(err, ErrPartialRecord) {
		t.Errorf("Decode error = %v, want ErrPartialRecord", err)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), Land.Filename())
	if err := os.WriteFile(path, bytes.Repeat([]byte{9}, 30), 0o644); err != nil {
		t.Fatal(err)
	}

	p := Enumerate(Range{70, 72}, Range{50, 52}, Range{50, 52})
	if err := WriteFile(path, p); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 24 {
		t.Fatalf("file size = %d, want 24", info.Size())
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, p) {
		t.Error("ReadFile did not return the written table")
	}
}

func TestWriteFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := WriteFile(path, nil); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("file size = %d, want 0", info.Size())
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "lands.bin")
	if err := WriteFile(path, Palette{{1, 1, 1}}); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
