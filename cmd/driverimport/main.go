// Command driverimport converts a driver-management workbook into the
// JSON database consumed by the management app.
//
// Usage:
//
//	driverimport [workbook.xlsx] [out.json]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fleetops/sheetgrid/driverdb"
)

const (
	defaultWorkbook = "Master Driver Sep.xlsx"
	defaultOutput   = "db.json"
)

func main() {
	workbook, output := defaultWorkbook, defaultOutput
	if len(os.Args) > 1 {
		workbook = os.Args[1]
	}
	if len(os.Args) > 2 {
		output = os.Args[2]
	}

	db, err := driverdb.ImportFile(workbook)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(output)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.WriteJSON(out); err != nil {
		out.Close()
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Import complete:")
	for _, c := range db.Counts() {
		fmt.Printf("- %s: %d\n", c.Category, c.Count)
	}
}
