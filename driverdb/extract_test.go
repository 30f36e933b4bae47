package driverdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/sheetgrid"
)

func driverTestGrid() sheetgrid.Grid {
	return sheetgrid.Grid{
		{"Driver Roster 2024"},
		{"Driver Name:", "Home Base:", "Position / \nDivision", "Driver Availability & Constraints", "TWIC Card"},
		{"John Smith", "Dallas, TX", "OTR / Solo", "Weekends only", "Yes"},
		{"DRIVERS THAT HAVE BEEN DISMISSED"},
		{"", "", "", "", ""},
		{"", "Laredo, TX"},
		{"Maria Garcia", "Laredo, TX", "AG4", "", "No"},
	}
}

func TestExtractDrivers(t *testing.T) {
	t.Parallel()

	t.Run("extracts data rows with sequential identifiers", func(t *testing.T) {
		t.Parallel()

		drivers, err := ExtractDrivers(driverTestGrid())

		require.NoError(t, err)
		require.Len(t, drivers, 2)

		assert.Equal(t, "sep_1", drivers[0].ID)
		assert.Equal(t, "John Smith", drivers[0].Name)
		assert.Equal(t, "Dallas, TX", drivers[0].HomeBase)
		assert.Equal(t, "OTR / Solo", drivers[0].Position)
		assert.Equal(t, "Weekends only", drivers[0].Notes)
		assert.Equal(t, "Yes", drivers[0].TWIC)

		assert.Equal(t, "sep_2", drivers[1].ID)
		assert.Equal(t, "Maria Garcia", drivers[1].Name)
	})

	t.Run("placement fields stay empty", func(t *testing.T) {
		t.Parallel()

		drivers, err := ExtractDrivers(driverTestGrid())

		require.NoError(t, err)
		for _, d := range drivers {
			assert.Empty(t, d.HiredCity)
			assert.Empty(t, d.CurrentCity)
			assert.Empty(t, d.PreferredPartner)
			assert.Empty(t, d.RouteRestrictions)
		}
	})

	t.Run("skips caption, blank, and empty-identity rows", func(t *testing.T) {
		t.Parallel()

		drivers, err := ExtractDrivers(driverTestGrid())

		require.NoError(t, err)
		for _, d := range drivers {
			assert.NotEmpty(t, d.Name)
			assert.NotContains(t, d.Name, "DISMISSED")
		}
	})

	t.Run("resolves the fallback position title", func(t *testing.T) {
		t.Parallel()

		grid := sheetgrid.Grid{
			{"Driver Name:", "Home Base:", "Position / Division", "Driver Availability & Constraints"},
			{"John Smith", "Dallas, TX", "OTR / Solo", ""},
		}

		drivers, err := ExtractDrivers(grid)

		require.NoError(t, err)
		require.Len(t, drivers, 1)
		assert.Equal(t, "OTR / Solo", drivers[0].Position)
	})

	t.Run("missing optional column yields empty fields, not failure", func(t *testing.T) {
		t.Parallel()

		grid := sheetgrid.Grid{
			{"Driver Name:", "Home Base:", "Driver Availability & Constraints"},
			{"John Smith", "Dallas, TX", "Weekends only"},
		}

		drivers, err := ExtractDrivers(grid)

		require.NoError(t, err)
		require.Len(t, drivers, 1)
		assert.Empty(t, drivers[0].TWIC)
		assert.Empty(t, drivers[0].Position)
	})

	t.Run("header echo rows are excluded case-insensitively", func(t *testing.T) {
		t.Parallel()

		grid := sheetgrid.Grid{
			{"Driver Name:", "Home Base:", "Driver Availability & Constraints"},
			{"Driver Name:", "Home Base:", ""},
			{"John Smith", "Dallas, TX", ""},
		}

		drivers, err := ExtractDrivers(grid)

		require.NoError(t, err)
		require.Len(t, drivers, 1)
		assert.Equal(t, "John Smith", drivers[0].Name)
	})

	t.Run("fails with ErrHeaderNotFound when the anchor text is missing", func(t *testing.T) {
		t.Parallel()

		grid := sheetgrid.Grid{
			{"Name", "City"},
			{"John Smith", "Dallas"},
		}

		_, err := ExtractDrivers(grid)

		require.Error(t, err)
		assert.ErrorIs(t, err, sheetgrid.ErrHeaderNotFound)
	})
}

func TestExtractLeads(t *testing.T) {
	t.Parallel()

	grid := sheetgrid.Grid{
		{"Driver Name", "Date of Position Acceptance", "Date Sent to Phase 2", "Position", "Recruiter", "Notes"},
		{"Alex Johnson", "45000", "45007", "OTR", "Kim", "call back"},
		{"Driver Name", "", "", "", "", ""},
		{"Riley Chen", "N/A", "", "AG4", "", ""},
	}

	leads, err := ExtractLeads(grid)

	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "lead_1", leads[0].ID)
	assert.Equal(t, "Alex Johnson", leads[0].Name)
	assert.Equal(t, "2023-03-15", leads[0].DateAccepted)
	assert.Equal(t, "2023-03-22", leads[0].DateSentPhase2)

	assert.Equal(t, "lead_2", leads[1].ID)
	assert.Equal(t, "N/A", leads[1].DateAccepted, "free text passes through unchanged")
}

func otrTestHeader() sheetgrid.Row {
	return sheetgrid.Row{
		"Passed", "Driver Name", "Age", "Position", "Years of Experience",
		"Phone#", "Location", "AJG CH", "GH CH", "I9", "NHPW", "AJG DT",
		"GH DT", "Onboarding Training", "Added to Insurance", "GTG?",
		"Dispatched", "Notes", "RTG Date",
	}
}

func TestExtractOTRHires(t *testing.T) {
	t.Parallel()

	grid := sheetgrid.Grid{
		otrTestHeader(),
		{"45000", "Sam Lee", "34", "OTR", "5", "555-0100", "Dallas, TX",
			"x", "x", "x", "x", "x", "x", "done", "yes", "yes", "yes", "", "45010"},
	}

	hires, err := ExtractOTRHires(grid, "otrmain")

	require.NoError(t, err)
	require.Len(t, hires, 1)

	h := hires[0]
	assert.Equal(t, "otrmain_1", h.ID)
	assert.Equal(t, "2023-03-15", h.Passed)
	assert.Equal(t, "Sam Lee", h.Name)
	assert.Equal(t, "5", h.YOE)
	assert.Equal(t, "555-0100", h.Phone)
	assert.Equal(t, "2023-03-25", h.RTGDate)
}

func TestExtractAG4Hires(t *testing.T) {
	t.Parallel()

	grid := sheetgrid.Grid{
		{"Passed", "Driver Name", "Age", "Position", "YOE", "Phone#", "Location",
			"RTG Date", "NHPW", "I9 Call Completed", "AG4 DT", "DOT Medical Test",
			"Onboarding Training", "Added to Insurance", "GTG?", "Dispatched", "Notes"},
		{"45002", "Lena Brooks", "29", "AG4", "3", "555-0102", "El Paso, TX",
			"45012", "x", "yes", "x", "passed", "done", "yes", "yes", "yes", ""},
	}

	hires, err := ExtractAG4Hires(grid)

	require.NoError(t, err)
	require.Len(t, hires, 1)

	h := hires[0]
	assert.Equal(t, "ag4_1", h.ID)
	assert.Equal(t, "2023-03-17", h.Passed)
	assert.Equal(t, "2023-03-27", h.RTGDate)
	assert.Equal(t, "yes", h.I9)
	assert.Equal(t, "passed", h.DOTMedical)
}

func TestExtractAG4Separations(t *testing.T) {
	t.Parallel()

	grid := sheetgrid.Grid{
		{"Passed", "Driver Name", "NHPW", "AG4 DT", "Onboarding Training",
			"Added to Insurance", "GTG?", "Dispatched", "Notes", "RTG Date",
			"Return Date", "Location", "Number", "Position"},
		{"45003", "Omar Diaz", "x", "x", "done", "yes", "yes", "yes", "quit",
			"45013", "45020", "San Antonio, TX", "555-0103", "AG4"},
	}

	seps, err := ExtractAG4Separations(grid)

	require.NoError(t, err)
	require.Len(t, seps, 1)

	s := seps[0]
	assert.Equal(t, "ag4sep_1", s.ID)
	assert.Equal(t, "2023-03-18", s.Passed)
	assert.Equal(t, "2023-03-28", s.RTGDate)
	assert.Equal(t, "2023-04-04", s.ReturnDate)
	assert.Equal(t, "555-0103", s.Phone, "phone comes from the Number column")
}

func TestExtractHistorical(t *testing.T) {
	t.Parallel()

	grid := sheetgrid.Grid{
		{"Historical Drivers"},
		{"Last Name", "First Name", "Position", "Termination Date", "Incentives"},
		{"Nguyen", "Thu", "OTR", "45004", "bonus"},
		{"Past drivers below"},
		{"Okafor", "Ada", "AG4", "44927", ""},
	}

	hist, err := ExtractHistorical(grid)

	require.NoError(t, err)
	require.Len(t, hist, 2)

	assert.Equal(t, "hist_1", hist[0].ID)
	assert.Equal(t, "Nguyen", hist[0].LastName)
	assert.Equal(t, "2023-03-19", hist[0].TerminationDate)

	assert.Equal(t, "hist_2", hist[1].ID)
	assert.Equal(t, "Okafor", hist[1].LastName)
	assert.Equal(t, "2023-01-01", hist[1].TerminationDate)
}
