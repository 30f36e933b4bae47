// Package sheetgrid reads zipped-XML spreadsheet workbooks without a
// prebuilt spreadsheet library. It opens the archive, resolves the
// shared-string table, maps sheet names to worksheet entries through the
// workbook relationship table, and materializes each worksheet as a
// rectangular grid of normalized text cells. A heuristic header locator
// finds column-title rows in hand-maintained sheets whose headers drift
// in wording, whitespace, and case.
//
// Workbook archives may be wrapped in gzip, bzip2, xz, or zstd
// compression; [Open] decompresses transparently based on the [FileType].
//
// # Memory Considerations
//
// The whole workbook is loaded into memory: the archive bytes are read in
// full (ZIP requires random access) and every declared worksheet is parsed
// eagerly into its grid. This is intentional for a batch, run-once
// pipeline; it is not a streaming reader.
//
// # Example usage
//
//	f, _ := os.Open("workbook.xlsx")
//	defer f.Close()
//	wb, err := sheetgrid.Open(f, sheetgrid.XLSX)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grid, err := wb.Sheet("Sheet1")
package sheetgrid

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

// Sentinel errors reported by the workbook reader. All three are fatal for
// the affected extraction: a missing archive entry, sheet, or header row is
// indistinguishable from corrupt input and must not degrade into an empty
// result.
var (
	// ErrEntryNotFound is returned when a required archive entry is absent.
	ErrEntryNotFound = errors.New("archive entry not found")
	// ErrSheetNotFound is returned when a requested sheet name is absent
	// from the workbook index.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrHeaderNotFound is returned when no row contains all required
	// header keywords.
	ErrHeaderNotFound = errors.New("header row not found")
)

// FileType represents supported workbook container types including
// compression variants.
type FileType int

const (
	// XLSX represents an uncompressed zipped-XML workbook.
	XLSX FileType = iota
	// XLSXGZ represents a gzip-compressed workbook.
	XLSXGZ
	// XLSXBZ2 represents a bzip2-compressed workbook.
	XLSXBZ2
	// XLSXXZ represents an xz-compressed workbook.
	XLSXXZ
	// XLSXZSTD represents a zstd-compressed workbook.
	XLSXZSTD

	// Unsupported represents an unsupported file type.
	Unsupported
)

// String returns a human-readable string representation of the FileType.
func (ft FileType) String() string {
	switch ft {
	case XLSX:
		return "XLSX"
	case XLSXGZ:
		return "XLSX (gzip)"
	case XLSXBZ2:
		return "XLSX (bzip2)"
	case XLSXXZ:
		return "XLSX (xz)"
	case XLSXZSTD:
		return "XLSX (zstd)"
	default:
		return "Unsupported"
	}
}

// File extensions
const (
	ExtXLSX = ".xlsx"
	ExtGZ   = ".gz"
	ExtBZ2  = ".bz2"
	ExtXZ   = ".xz"
	ExtZSTD = ".zst"
)

// DetectFileType detects the workbook type from a path extension,
// including compression variants such as "book.xlsx.gz".
func DetectFileType(path string) FileType {
	basePath := path
	var compressed FileType = Unsupported

	switch {
	case strings.HasSuffix(strings.ToLower(path), ExtGZ):
		basePath = path[:len(path)-len(ExtGZ)]
		compressed = XLSXGZ
	case strings.HasSuffix(strings.ToLower(path), ExtBZ2):
		basePath = path[:len(path)-len(ExtBZ2)]
		compressed = XLSXBZ2
	case strings.HasSuffix(strings.ToLower(path), ExtXZ):
		basePath = path[:len(path)-len(ExtXZ)]
		compressed = XLSXXZ
	case strings.HasSuffix(strings.ToLower(path), ExtZSTD):
		basePath = path[:len(path)-len(ExtZSTD)]
		compressed = XLSXZSTD
	}

	if strings.ToLower(filepath.Ext(basePath)) != ExtXLSX {
		return Unsupported
	}
	if compressed != Unsupported {
		return compressed
	}
	return XLSX
}

// IsCompressed returns true if the file type is compressed.
func IsCompressed(ft FileType) bool {
	switch ft {
	case XLSXGZ, XLSXBZ2, XLSXXZ, XLSXZSTD:
		return true
	default:
		return false
	}
}

// createDecompressedReader wraps the reader with appropriate decompression.
func createDecompressedReader(reader io.Reader, fileType FileType) (io.Reader, func() error, error) {
	switch fileType {
	case XLSXGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, func() error { return gzReader.Close() }, nil

	case XLSXBZ2:
		return bzip2.NewReader(reader), nil, nil

	case XLSXXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, nil, nil

	case XLSXZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error { decoder.Close(); return nil }, nil

	default:
		// No compression
		return reader, nil, nil
	}
}
