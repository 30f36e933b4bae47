package sheetgrid

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Row is an ordered sequence of cell texts. Its length equals the highest
// populated column number of the document row; gaps hold empty strings.
type Row []string

// Grid is the ordered sequence of populated rows of one worksheet.
// Rows with no cell elements at all are omitted entirely, so a grid index
// is not a document row number.
type Grid []Row

type xmlWorksheet struct {
	SheetData struct {
		Rows []xmlSheetRow `xml:"row"`
	} `xml:"sheetData"`
}

type xmlSheetRow struct {
	Cells []xmlCell `xml:"c"`
}

type xmlCell struct {
	Ref    string         `xml:"r,attr"`
	Type   string         `xml:"t,attr"`
	Value  *string        `xml:"v"`
	Inline *xmlStringItem `xml:"is"`
}

// resolve returns the cell's text: inline string first, then the value
// node (indexed through the shared-string table when the cell type marks
// it as a reference), otherwise empty.
func (c xmlCell) resolve(shared []string) string {
	if c.Inline != nil {
		return c.Inline.text()
	}
	if c.Value == nil {
		return ""
	}
	if c.Type == "s" {
		// A malformed or out-of-range index falls back to the literal text.
		if idx, err := strconv.Atoi(strings.TrimSpace(*c.Value)); err == nil && idx >= 0 && idx < len(shared) {
			return shared[idx]
		}
	}
	return *c.Value
}

// buildGrid parses one worksheet's XML into a grid of normalized cells.
// Cells are first collected as sparse (column, value) pairs, then each row
// is materialized dense up to its maximum column. A cell element with a
// valid reference counts as populated even when its value is empty.
func buildGrid(data []byte, shared []string) (Grid, error) {
	var ws xmlWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse worksheet: %w", err)
	}

	grid := make(Grid, 0, len(ws.SheetData.Rows))
	for _, xr := range ws.SheetData.Rows {
		cells := make(map[int]string, len(xr.Cells))
		maxCol := 0
		for _, c := range xr.Cells {
			col, ok := parseCellRef(c.Ref)
			if !ok {
				continue
			}
			cells[col] = Normalize(c.resolve(shared))
			if col > maxCol {
				maxCol = col
			}
		}
		if len(cells) == 0 {
			continue
		}
		row := make(Row, maxCol)
		for col, v := range cells {
			row[col-1] = v
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// parseCellRef extracts the 1-based column number from a cell reference
// such as "B12". References without a letter prefix followed by a digit
// are rejected.
func parseCellRef(ref string) (col int, ok bool) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 || i >= len(ref) || ref[i] < '0' || ref[i] > '9' {
		return 0, false
	}
	return colFromLetters(ref[:i]), true
}

// colFromLetters decodes spreadsheet column letters to a 1-based column
// number using the zero-less base-26 scheme: A=1, Z=26, AA=27.
func colFromLetters(letters string) int {
	n := 0
	for i := 0; i < len(letters); i++ {
		n = n*26 + int(letters[i]-'A') + 1
	}
	return n
}

// Normalize unifies line endings to \n and trims surrounding whitespace.
// Every cell in a built grid has this form; the empty string is the
// canonical no-value sentinel.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
