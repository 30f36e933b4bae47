package driverdb

import (
	"fmt"

	"github.com/fleetops/sheetgrid"
)

// Schema tables for the six record categories. Keywords and titles are
// matched after lower-casing and trimming, so they are listed here in
// their canonical lower-cased form. Fallback titles capture spelling
// drift observed across workbook revisions.

var driverSchema = schema{
	keywords: []string{"driver name", "home base", "availability"},
	identity: "name",
	skipPhrases: []string{
		"driver name",
		"past drivers",
		"drivers that have been dismissed",
	},
	fields: []field{
		{name: "name", titles: []string{"driver name:"}},
		{name: "homeBase", titles: []string{"home base:"}},
		{name: "position", titles: []string{"position / \ndivision", "position / division"}},
		{name: "notes", titles: []string{"driver availability & constraints"}},
		{name: "twic", titles: []string{"twic card", "twic card "}},
	},
}

var leadSchema = schema{
	keywords:    []string{"driver name", "date of position acceptance", "date sent to phase 2"},
	identity:    "name",
	skipPhrases: []string{"driver name"},
	fields: []field{
		{name: "name", titles: []string{"driver name"}},
		{name: "dateAccepted", titles: []string{"date of position acceptance"}, date: true},
		{name: "dateSentPhase2", titles: []string{"date sent to phase 2"}, date: true},
		{name: "position", titles: []string{"position"}},
		{name: "recruiter", titles: []string{"recruiter"}},
		{name: "notes", titles: []string{"notes"}},
	},
}

var otrSchema = schema{
	keywords:    []string{"driver name", "ajg dt", "gh dt", "onboarding training"},
	identity:    "name",
	skipPhrases: []string{"driver name"},
	fields: []field{
		{name: "passed", titles: []string{"passed"}, date: true},
		{name: "name", titles: []string{"driver name"}},
		{name: "age", titles: []string{"age"}},
		{name: "position", titles: []string{"position"}},
		{name: "yoe", titles: []string{"years of experience"}},
		{name: "phone", titles: []string{"phone#"}},
		{name: "location", titles: []string{"location"}},
		{name: "ajgCH", titles: []string{"ajg ch"}},
		{name: "ghCH", titles: []string{"gh ch"}},
		{name: "i9", titles: []string{"i9"}},
		{name: "nhpw", titles: []string{"nhpw"}},
		{name: "ajgDT", titles: []string{"ajg dt"}},
		{name: "ghDT", titles: []string{"gh dt"}},
		{name: "onboarding", titles: []string{"onboarding training"}},
		{name: "insurance", titles: []string{"added to insurance"}},
		{name: "gtg", titles: []string{"gtg?"}},
		{name: "dispatched", titles: []string{"dispatched"}},
		{name: "notes", titles: []string{"notes"}},
		{name: "rtgDate", titles: []string{"rtg date"}, date: true},
	},
}

var ag4HireSchema = schema{
	keywords:    []string{"driver name", "ag4 dt", "dot medical", "onboarding training"},
	identity:    "name",
	skipPhrases: []string{"driver name"},
	fields: []field{
		{name: "passed", titles: []string{"passed"}, date: true},
		{name: "name", titles: []string{"driver name"}},
		{name: "age", titles: []string{"age"}},
		{name: "position", titles: []string{"position"}},
		{name: "yoe", titles: []string{"yoe"}},
		{name: "phone", titles: []string{"phone#"}},
		{name: "location", titles: []string{"location"}},
		{name: "rtgDate", titles: []string{"rtg date"}, date: true},
		{name: "nhpw", titles: []string{"nhpw"}},
		{name: "i9", titles: []string{"i9 call completed"}},
		{name: "ag4DT", titles: []string{"ag4 dt"}},
		{name: "dotMedical", titles: []string{"dot medical test"}},
		{name: "onboarding", titles: []string{"onboarding training"}},
		{name: "insurance", titles: []string{"added to insurance"}},
		{name: "gtg", titles: []string{"gtg?"}},
		{name: "dispatched", titles: []string{"dispatched"}},
		{name: "notes", titles: []string{"notes"}},
	},
}

var ag4SepSchema = schema{
	keywords:    []string{"driver name", "ag4 dt", "onboarding training", "return date"},
	identity:    "name",
	skipPhrases: []string{"driver name"},
	fields: []field{
		{name: "passed", titles: []string{"passed"}, date: true},
		{name: "name", titles: []string{"driver name"}},
		{name: "nhpw", titles: []string{"nhpw"}},
		{name: "ag4DT", titles: []string{"ag4 dt"}},
		{name: "onboarding", titles: []string{"onboarding training"}},
		{name: "insurance", titles: []string{"added to insurance"}},
		{name: "gtg", titles: []string{"gtg?"}},
		{name: "dispatched", titles: []string{"dispatched"}},
		{name: "notes", titles: []string{"notes"}},
		{name: "rtgDate", titles: []string{"rtg date"}, date: true},
		{name: "returnDate", titles: []string{"return date"}, date: true},
		{name: "location", titles: []string{"location"}},
		{name: "phone", titles: []string{"number"}},
		{name: "position", titles: []string{"position"}},
	},
}

var historicalSchema = schema{
	keywords: []string{"last name", "first name", "termination date"},
	identity: "lastName",
	skipPhrases: []string{
		"last name",
		"past drivers",
		"drivers that have been dismissed",
	},
	fields: []field{
		{name: "lastName", titles: []string{"last name"}},
		{name: "firstName", titles: []string{"first name"}},
		{name: "position", titles: []string{"position"}},
		{name: "terminationDate", titles: []string{"termination date"}, date: true},
		{name: "incentives", titles: []string{"incentives", "incentives "}},
	},
}

// ExtractDrivers converts the driver-utilization sheet into Driver
// records with sep_<n> identifiers.
func ExtractDrivers(g sheetgrid.Grid) ([]Driver, error) {
	rows, err := extractRows(g, driverSchema)
	if err != nil {
		return nil, fmt.Errorf("driver utilization: %w", err)
	}
	out := make([]Driver, 0, len(rows))
	for _, r := range rows {
		out = append(out, Driver{
			ID:       recordID("sep", len(out)+1),
			Name:     r["name"],
			HomeBase: r["homeBase"],
			Position: r["position"],
			Notes:    r["notes"],
			TWIC:     r["twic"],
		})
	}
	return out, nil
}

// ExtractLeads converts the leads sheet into Lead records with lead_<n>
// identifiers.
func ExtractLeads(g sheetgrid.Grid) ([]Lead, error) {
	rows, err := extractRows(g, leadSchema)
	if err != nil {
		return nil, fmt.Errorf("leads: %w", err)
	}
	out := make([]Lead, 0, len(rows))
	for _, r := range rows {
		out = append(out, Lead{
			ID:             recordID("lead", len(out)+1),
			Name:           r["name"],
			DateAccepted:   r["dateAccepted"],
			DateSentPhase2: r["dateSentPhase2"],
			Position:       r["position"],
			Recruiter:      r["recruiter"],
			Notes:          r["notes"],
		})
	}
	return out, nil
}

// ExtractOTRHires converts one OTR new-hire status sheet into OTRHire
// records. idPrefix keeps identifiers from the two source sheets distinct
// until the union is deduplicated and renumbered.
func ExtractOTRHires(g sheetgrid.Grid, idPrefix string) ([]OTRHire, error) {
	rows, err := extractRows(g, otrSchema)
	if err != nil {
		return nil, fmt.Errorf("otr new hires: %w", err)
	}
	out := make([]OTRHire, 0, len(rows))
	for _, r := range rows {
		out = append(out, OTRHire{
			ID:         recordID(idPrefix, len(out)+1),
			Passed:     r["passed"],
			Name:       r["name"],
			Age:        r["age"],
			Position:   r["position"],
			YOE:        r["yoe"],
			Phone:      r["phone"],
			Location:   r["location"],
			AJGCH:      r["ajgCH"],
			GHCH:       r["ghCH"],
			I9:         r["i9"],
			NHPW:       r["nhpw"],
			AJGDT:      r["ajgDT"],
			GHDT:       r["ghDT"],
			Onboarding: r["onboarding"],
			Insurance:  r["insurance"],
			GTG:        r["gtg"],
			Dispatched: r["dispatched"],
			Notes:      r["notes"],
			RTGDate:    r["rtgDate"],
		})
	}
	return out, nil
}

// ExtractAG4Hires converts the AG4 new-hire status sheet into AG4Hire
// records with ag4_<n> identifiers.
func ExtractAG4Hires(g sheetgrid.Grid) ([]AG4Hire, error) {
	rows, err := extractRows(g, ag4HireSchema)
	if err != nil {
		return nil, fmt.Errorf("ag4 new hires: %w", err)
	}
	out := make([]AG4Hire, 0, len(rows))
	for _, r := range rows {
		out = append(out, AG4Hire{
			ID:         recordID("ag4", len(out)+1),
			Passed:     r["passed"],
			Name:       r["name"],
			Age:        r["age"],
			Position:   r["position"],
			YOE:        r["yoe"],
			Phone:      r["phone"],
			Location:   r["location"],
			RTGDate:    r["rtgDate"],
			NHPW:       r["nhpw"],
			I9:         r["i9"],
			AG4DT:      r["ag4DT"],
			DOTMedical: r["dotMedical"],
			Onboarding: r["onboarding"],
			Insurance:  r["insurance"],
			GTG:        r["gtg"],
			Dispatched: r["dispatched"],
			Notes:      r["notes"],
		})
	}
	return out, nil
}

// ExtractAG4Separations converts the AG4 separation sheet into
// AG4Separation records with ag4sep_<n> identifiers.
func ExtractAG4Separations(g sheetgrid.Grid) ([]AG4Separation, error) {
	rows, err := extractRows(g, ag4SepSchema)
	if err != nil {
		return nil, fmt.Errorf("ag4 separations: %w", err)
	}
	out := make([]AG4Separation, 0, len(rows))
	for _, r := range rows {
		out = append(out, AG4Separation{
			ID:         recordID("ag4sep", len(out)+1),
			Passed:     r["passed"],
			Name:       r["name"],
			NHPW:       r["nhpw"],
			AG4DT:      r["ag4DT"],
			Onboarding: r["onboarding"],
			Insurance:  r["insurance"],
			GTG:        r["gtg"],
			Dispatched: r["dispatched"],
			Notes:      r["notes"],
			RTGDate:    r["rtgDate"],
			ReturnDate: r["returnDate"],
			Location:   r["location"],
			Phone:      r["phone"],
			Position:   r["position"],
		})
	}
	return out, nil
}

// ExtractHistorical converts the historical-drivers sheet into
// HistoricalDriver records with hist_<n> identifiers.
func ExtractHistorical(g sheetgrid.Grid) ([]HistoricalDriver, error) {
	rows, err := extractRows(g, historicalSchema)
	if err != nil {
		return nil, fmt.Errorf("historical drivers: %w", err)
	}
	out := make([]HistoricalDriver, 0, len(rows))
	for _, r := range rows {
		out = append(out, HistoricalDriver{
			ID:              recordID("hist", len(out)+1),
			LastName:        r["lastName"],
			FirstName:       r["firstName"],
			Position:        r["position"],
			TerminationDate: r["terminationDate"],
			Incentives:      r["incentives"],
		})
	}
	return out, nil
}
