// Package driverdb converts a driver-management workbook into the typed
// record database consumed by the downstream management app.
//
// This package bridges the sheetgrid workbook reader with six record
// schemas: active drivers, recruiting leads, OTR new hires (unioned from
// two overlapping status sheets and deduplicated), AG4 new hires, AG4
// separations, and historical drivers. Sheet headers are located
// heuristically because the workbook is hand-maintained and column titles
// drift in wording, whitespace, and case.
//
// # Usage
//
//	f, _ := os.Open("Master Driver Sep.xlsx")
//	defer f.Close()
//	db, err := driverdb.Import(f, sheetgrid.XLSX)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db.WriteJSON(os.Stdout)
package driverdb

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fleetops/sheetgrid"
	"github.com/tiendc/go-deepcopy"
)

// Logical sheet names consumed from the workbook.
const (
	SheetDriverUtilization = "Driver Utilization (Driver Sep)"
	SheetLeads             = "LEADS"
	SheetOTRNewHires       = "OTR New Hires Status"
	SheetAJGGHNewHires     = "AJGGH New Hires Status"
	SheetAG4NewHires       = "AG4 New Hire Status"
	SheetAG4Separations    = "AG4 Driver Sep"
	SheetHistorical        = "Historical Drivers"
)

// Database is the full extraction result: one ordered record sequence per
// category. It is built once per run and not mutated afterwards; use
// Clone for a mutable snapshot.
type Database struct {
	DriversSep []Driver           `json:"driversSep"`
	Leads      []Lead             `json:"leads"`
	OTRHires   []OTRHire          `json:"otrHires"`
	AG4Hires   []AG4Hire          `json:"ag4Hires"`
	AG4Sep     []AG4Separation    `json:"ag4Sep"`
	Historical []HistoricalDriver `json:"historical"`
}

// Import parses a workbook archive and extracts all six record
// categories. Any missing archive entry, missing sheet, or unlocatable
// header row aborts the whole run: a silently empty category would be
// indistinguishable from a sheet with zero data rows.
func Import(reader io.Reader, fileType sheetgrid.FileType) (*Database, error) {
	wb, err := sheetgrid.Open(reader, fileType)
	if err != nil {
		return nil, err
	}
	return build(wb)
}

// ImportFile opens the named workbook, detecting compression from the
// path extension, and runs Import on it.
func ImportFile(path string) (db *Database, err error) {
	fileType := sheetgrid.DetectFileType(path)
	if fileType == sheetgrid.Unsupported {
		return nil, fmt.Errorf("unsupported workbook file type: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	return Import(f, fileType)
}

// build runs each extractor against its sheet and assembles the database.
func build(wb *sheetgrid.Workbook) (*Database, error) {
	db := &Database{}

	grid, err := wb.Sheet(SheetDriverUtilization)
	if err != nil {
		return nil, err
	}
	if db.DriversSep, err = ExtractDrivers(grid); err != nil {
		return nil, err
	}

	if grid, err = wb.Sheet(SheetLeads); err != nil {
		return nil, err
	}
	if db.Leads, err = ExtractLeads(grid); err != nil {
		return nil, err
	}

	// The two OTR status sheets overlap; union then dedupe.
	if grid, err = wb.Sheet(SheetOTRNewHires); err != nil {
		return nil, err
	}
	otrMain, err := ExtractOTRHires(grid, "otrmain")
	if err != nil {
		return nil, err
	}
	if grid, err = wb.Sheet(SheetAJGGHNewHires); err != nil {
		return nil, err
	}
	otrAJGGH, err := ExtractOTRHires(grid, "otrajggh")
	if err != nil {
		return nil, fmt.Errorf("ajggh: %w", err)
	}
	db.OTRHires = dedupeOTR(append(otrMain, otrAJGGH...))

	if grid, err = wb.Sheet(SheetAG4NewHires); err != nil {
		return nil, err
	}
	if db.AG4Hires, err = ExtractAG4Hires(grid); err != nil {
		return nil, err
	}

	if grid, err = wb.Sheet(SheetAG4Separations); err != nil {
		return nil, err
	}
	if db.AG4Sep, err = ExtractAG4Separations(grid); err != nil {
		return nil, err
	}

	if grid, err = wb.Sheet(SheetHistorical); err != nil {
		return nil, err
	}
	if db.Historical, err = ExtractHistorical(grid); err != nil {
		return nil, err
	}

	return db, nil
}

// WriteJSON writes the database as indented JSON with a trailing newline.
func (db *Database) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write database: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the database for callers that want a
// mutable snapshot while the original stays read-only.
func (db *Database) Clone() (*Database, error) {
	clone := &Database{}
	if err := deepcopy.Copy(clone, db); err != nil {
		return nil, fmt.Errorf("failed to deep copy database: %w", err)
	}
	return clone, nil
}

// Counts returns the number of records per category key, in output order.
// The cmd shell uses it for the run summary.
func (db *Database) Counts() []CategoryCount {
	return []CategoryCount{
		{"driversSep", len(db.DriversSep)},
		{"leads", len(db.Leads)},
		{"otrHires", len(db.OTRHires)},
		{"ag4Hires", len(db.AG4Hires)},
		{"ag4Sep", len(db.AG4Sep)},
		{"historical", len(db.Historical)},
	}
}

// CategoryCount pairs a category key with its record count.
type CategoryCount struct {
	Category string
	Count    int
}
