package ach

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// FileType represents supported input encodings for NACHA files,
// including compression variants.
type FileType int

const (
	// NACHA represents uncompressed NACHA text.
	NACHA FileType = iota
	// NACHAGZ represents gzip-compressed NACHA text.
	NACHAGZ
	// NACHABZ2 represents bzip2-compressed NACHA text.
	NACHABZ2
	// NACHAXZ represents xz-compressed NACHA text.
	NACHAXZ
	// NACHAZSTD represents zstd-compressed NACHA text.
	NACHAZSTD

	// Unsupported represents an unsupported input encoding.
	Unsupported
)

// String returns a human-readable string representation of the FileType.
func (ft FileType) String() string {
	switch ft {
	case NACHA:
		return "NACHA"
	case NACHAGZ:
		return "NACHA (gzip)"
	case NACHABZ2:
		return "NACHA (bzip2)"
	case NACHAXZ:
		return "NACHA (xz)"
	case NACHAZSTD:
		return "NACHA (zstd)"
	default:
		return "Unsupported"
	}
}

// File extensions
const (
	ExtACH   = ".ach"
	ExtNACHA = ".nacha"
	ExtTXT   = ".txt"
	ExtGZ    = ".gz"
	ExtBZ2   = ".bz2"
	ExtXZ    = ".xz"
	ExtZSTD  = ".zst"
)

// DetectFileType detects the input encoding from a path, including
// compression suffixes (payments.ach.gz, response.nacha.zst, ...).
func DetectFileType(path string) FileType {
	basePath := path
	compressed := NACHA

	switch {
	case strings.HasSuffix(strings.ToLower(path), ExtGZ):
		basePath = path[:len(path)-len(ExtGZ)]
		compressed = NACHAGZ
	case strings.HasSuffix(strings.ToLower(path), ExtBZ2):
		basePath = path[:len(path)-len(ExtBZ2)]
		compressed = NACHABZ2
	case strings.HasSuffix(strings.ToLower(path), ExtXZ):
		basePath = path[:len(path)-len(ExtXZ)]
		compressed = NACHAXZ
	case strings.HasSuffix(strings.ToLower(path), ExtZSTD):
		basePath = path[:len(path)-len(ExtZSTD)]
		compressed = NACHAZSTD
	}

	switch strings.ToLower(filepath.Ext(basePath)) {
	case ExtACH, ExtNACHA, ExtTXT:
		return compressed
	default:
		return Unsupported
	}
}

// IsCompressed returns true if the file type is compressed.
func IsCompressed(ft FileType) bool {
	switch ft {
	case NACHAGZ, NACHABZ2, NACHAXZ, NACHAZSTD:
		return true
	default:
		return false
	}
}

// Read decompresses data from reader as needed and parses it as a NACHA
// file.
//
// Example:
//
//	f, _ := os.Open("payments.ach.gz")
//	defer f.Close()
//	file, err := ach.Read(f, ach.NACHAGZ)
func Read(reader io.Reader, fileType FileType) (file *File, err error) {
	if reader == nil {
		return nil, errors.New("reader cannot be nil")
	}

	decompressedReader, closeFunc, decompErr := newDecompressedReader(reader, fileType)
	if decompErr != nil {
		return nil, fmt.Errorf("failed to decompress: %w", decompErr)
	}
	if closeFunc != nil {
		defer func() {
			if closeErr := closeFunc(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close decompressor: %w", closeErr)
			}
		}()
	}

	data, err := io.ReadAll(decompressedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read NACHA data: %w", err)
	}
	return Parse(string(data))
}

// newDecompressedReader wraps the reader with appropriate decompression.
func newDecompressedReader(reader io.Reader, fileType FileType) (io.Reader, func() error, error) {
	switch fileType {
	case NACHAGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, func() error { return gzReader.Close() }, nil

	case NACHABZ2:
		return bzip2.NewReader(reader), nil, nil

	case NACHAXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, nil, nil

	case NACHAZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error { decoder.Close(); return nil }, nil

	case NACHA:
		return reader, nil, nil

	default:
		return nil, nil, errors.New("unsupported file type")
	}
}
