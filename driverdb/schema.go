package driverdb

import (
	"fmt"
	"strings"

	"github.com/fleetops/sheetgrid"
)

// field binds one output field name to its candidate column titles.
// Titles are tried in order (primary first, then fallbacks) and the first
// present column wins; titles vary across sheet revisions by trailing
// whitespace or rewording.
type field struct {
	name   string
	titles []string
	date   bool
}

// schema describes how one record category's sheet is located and read:
// the keywords that anchor its header row, the field table, the identity
// field checked against the skip phrases, and the header-echo/footer
// phrases that mark caption rows repeated mid-table.
//
// The skip-phrase lists are data, not algorithm: they were observed in
// real workbooks and may need extending as new sheet variants appear.
type schema struct {
	keywords    []string
	identity    string
	skipPhrases []string
	fields      []field
}

// extractRows locates sch's header row in g and resolves every field of
// every row beneath it, applying the skip rules: rows whose identity value
// is empty or matches a skip phrase are caption/footer rows, and rows with
// every field empty are blanks. Both are dropped silently.
func extractRows(g sheetgrid.Grid, sch schema) ([]map[string]string, error) {
	headerRow, header, err := sheetgrid.FindHeader(g, sch.keywords)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(sch.fields))
	for _, f := range sch.fields {
		cols[f.name] = header.Resolve(f.titles...)
	}

	var out []map[string]string
	for _, row := range g[headerRow+1:] {
		vals := make(map[string]string, len(sch.fields))
		for _, f := range sch.fields {
			v := cellAt(row, cols[f.name])
			if f.date {
				v = serialToISO(v)
			}
			vals[f.name] = v
		}
		if isHeaderish(vals[sch.identity], sch.skipPhrases) {
			continue
		}
		if allEmpty(vals) {
			continue
		}
		out = append(out, vals)
	}
	return out, nil
}

// cellAt reads a cell by column index, treating unresolved columns (-1)
// and short rows as empty.
func cellAt(row sheetgrid.Row, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isHeaderish reports whether an identity value marks a non-data row: an
// empty value, or one containing any of the sheet's caption phrases.
func isHeaderish(v string, phrases []string) bool {
	lv := strings.ToLower(sheetgrid.Normalize(v))
	if lv == "" {
		return true
	}
	for _, p := range phrases {
		if strings.Contains(lv, p) {
			return true
		}
	}
	return false
}

func allEmpty(vals map[string]string) bool {
	for _, v := range vals {
		if v != "" {
			return false
		}
	}
	return true
}

// recordID formats the sequential identifier for the n-th record of a
// category, n starting at 1.
func recordID(prefix string, n int) string {
	return fmt.Sprintf("%s_%d", prefix, n)
}
