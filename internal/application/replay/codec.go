package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedExt marks zstd-compressed replay files
const CompressedExt = ".zst"

// zstdMagic is the frame header every zstd stream starts with
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Encode writes data as JSON, zstd-compressed when compress is set
func Encode(w io.Writer, data *ReplayData, compress bool) error {
	if !compress {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
		return nil
	}

	compWriter, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := json.NewEncoder(compWriter).Encode(data); err != nil {
		_ = compWriter.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := compWriter.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// Decode reads a replay, plain or zstd-compressed. The format is detected
// from the stream header.
func Decode(r io.Reader) (*ReplayData, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read replay header: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		compReader, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer compReader.Close()
		src = compReader
	}

	var data ReplayData
	if err := json.NewDecoder(src).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, FormatVersion)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// SaveReplay writes replay data to a file. Files ending in CompressedExt
// are always compressed.
func SaveReplay(filename string, data *ReplayData, compress bool) error {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	compress = compress || strings.HasSuffix(filename, CompressedExt)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(file, data, compress); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
