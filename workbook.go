package sheetgrid

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Archive entry names defined by the container format.
const (
	entrySharedStrings = "xl/sharedStrings.xml"
	entryWorkbook      = "xl/workbook.xml"
	entryWorkbookRels  = "xl/_rels/workbook.xml.rels"
)

// Workbook holds every declared worksheet of one archive, parsed into
// grids. It is read-only after Open returns.
type Workbook struct {
	names  []string // sheet names in document order
	sheets map[string]Grid
}

// Open reads a workbook archive from an io.Reader and parses all of its
// worksheets. The fileType parameter specifies the compression wrapping
// of the archive.
//
// Example:
//
//	f, _ := os.Open("book.xlsx.gz")
//	defer f.Close()
//	wb, err := sheetgrid.Open(f, sheetgrid.XLSXGZ)
func Open(reader io.Reader, fileType FileType) (wb *Workbook, err error) {
	if reader == nil {
		return nil, errors.New("reader cannot be nil")
	}

	decompressedReader, closeFunc, decompErr := createDecompressedReader(reader, fileType)
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

	// ZIP needs random access, so the archive is buffered in full.
	data, readErr := io.ReadAll(decompressedReader)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read workbook data: %w", readErr)
	}

	zr, zipErr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zipErr != nil {
		return nil, fmt.Errorf("failed to open workbook archive: %w", zipErr)
	}
	return readWorkbook(zr)
}

// SheetNames returns the names of all worksheets in document order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.names))
	copy(names, wb.names)
	return names
}

// Sheet returns the grid for the named worksheet. It returns an error
// wrapping ErrSheetNotFound when the name is absent from the workbook
// index.
func (wb *Workbook) Sheet(name string) (Grid, error) {
	grid, ok := wb.sheets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return grid, nil
}

// readWorkbook parses the workbook index and materializes every declared
// worksheet.
func readWorkbook(zr *zip.Reader) (*Workbook, error) {
	shared, err := readSharedStrings(zr)
	if err != nil {
		return nil, err
	}

	names, paths, err := readSheetIndex(zr)
	if err != nil {
		return nil, err
	}

	wb := &Workbook{
		names:  names,
		sheets: make(map[string]Grid, len(names)),
	}
	for _, name := range names {
		data, err := readEntry(zr, paths[name])
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		grid, err := buildGrid(data, shared)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		wb.sheets[name] = grid
	}
	return wb, nil
}

// readEntry reads the full contents of a named entry from the archive.
func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open entry %q: %w", name, err)
		}
		data, readErr := io.ReadAll(rc)
		closeErr := rc.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read entry %q: %w", name, readErr)
		}
		// A close error can signal a truncated deflate stream even when
		// the read appeared to succeed.
		if closeErr != nil {
			return nil, fmt.Errorf("failed to read entry %q: %w", name, closeErr)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
}

// xmlStringItem is one shared-string entry or inline-string node. Plain
// text lives in T; formatted text is split across Runs.
type xmlStringItem struct {
	T    *string        `xml:"t"`
	Runs []xmlStringRun `xml:"r"`
}

type xmlStringRun struct {
	T string `xml:"t"`
}

// text concatenates all text runs, flattening multi-run formatted text to
// plain text.
func (si xmlStringItem) text() string {
	var b strings.Builder
	if si.T != nil {
		b.WriteString(*si.T)
	}
	for _, r := range si.Runs {
		b.WriteString(r.T)
	}
	return b.String()
}

type xmlSharedStrings struct {
	Items []xmlStringItem `xml:"si"`
}

// readSharedStrings parses the shared-string entry into an ordered string
// table. A missing entry is a valid state (the workbook uses inline
// strings only) and yields an empty table.
func readSharedStrings(zr *zip.Reader) ([]string, error) {
	data, err := readEntry(zr, entrySharedStrings)
	if errors.Is(err, ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sst xmlSharedStrings
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("failed to parse shared strings: %w", err)
	}
	shared := make([]string, 0, len(sst.Items))
	for _, si := range sst.Items {
		shared = append(shared, si.text())
	}
	return shared, nil
}

type xmlWorkbook struct {
	Sheets struct {
		Sheets []xmlWorkbookSheet `xml:"sheet"`
	} `xml:"sheets"`
}

type xmlWorkbookSheet struct {
	Name  string `xml:"name,attr"`
	RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type xmlRelationships struct {
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

// readSheetIndex parses the workbook manifest and its relationship table,
// producing the sheet-name to worksheet-entry mapping. Sheets whose
// relationship target does not point into the worksheets location (e.g.
// chartsheets) are dropped silently.
func readSheetIndex(zr *zip.Reader) ([]string, map[string]string, error) {
	wbData, err := readEntry(zr, entryWorkbook)
	if err != nil {
		return nil, nil, err
	}
	relData, err := readEntry(zr, entryWorkbookRels)
	if err != nil {
		return nil, nil, err
	}

	var manifest xmlWorkbook
	if err := xml.Unmarshal(wbData, &manifest); err != nil {
		return nil, nil, fmt.Errorf("failed to parse workbook manifest: %w", err)
	}
	var rels xmlRelationships
	if err := xml.Unmarshal(relData, &rels); err != nil {
		return nil, nil, fmt.Errorf("failed to parse workbook relationships: %w", err)
	}

	targets := make(map[string]string, len(rels.Relationships))
	for _, r := range rels.Relationships {
		targets[r.ID] = r.Target
	}

	var names []string
	paths := make(map[string]string, len(manifest.Sheets.Sheets))
	for _, s := range manifest.Sheets.Sheets {
		target := targets[s.RelID]
		if !strings.HasPrefix(target, "worksheets/") {
			continue
		}
		names = append(names, s.Name)
		paths[s.Name] = "xl/" + target
	}
	return names, paths, nil
}
