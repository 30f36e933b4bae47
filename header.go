package sheetgrid

import (
	"fmt"
	"strings"
)

// HeaderMap maps a lower-cased, trimmed column title to its zero-based
// column index. When a title repeats within the header row, the last
// occurrence wins.
type HeaderMap map[string]int

// headerJoinSep separates cell texts when a row is joined for keyword
// matching.
const headerJoinSep = " | "

// FindHeader scans the grid top to bottom for the first row whose joined,
// lower-cased text contains every required keyword, in any order. It
// returns that row's grid index and the column-title map built from it.
// When no row satisfies all keywords it returns an error wrapping
// ErrHeaderNotFound; callers must treat that as fatal for the sheet
// rather than emit zero records.
func FindHeader(g Grid, keywords []string) (int, HeaderMap, error) {
	for i, row := range g {
		lowered := make([]string, len(row))
		for j, cell := range row {
			lowered[j] = strings.ToLower(Normalize(cell))
		}
		joined := strings.Join(lowered, headerJoinSep)

		found := true
		for _, kw := range keywords {
			if !strings.Contains(joined, kw) {
				found = false
				break
			}
		}
		if !found {
			continue
		}

		header := make(HeaderMap, len(row))
		for j, cell := range lowered {
			header[cell] = j
		}
		return i, header, nil
	}
	return 0, nil, fmt.Errorf("%w: keywords %q", ErrHeaderNotFound, keywords)
}

// Resolve returns the column index of the first present title, trying
// titles in order. Titles are normalized the same way header cells are,
// so trailing-space and line-break variants of the same title compare
// equal. It returns -1 when no title is present; callers treat that as
// "column absent" and read the field as empty.
func (h HeaderMap) Resolve(titles ...string) int {
	for _, t := range titles {
		if idx, ok := h[strings.ToLower(Normalize(t))]; ok {
			return idx
		}
	}
	return -1
}
