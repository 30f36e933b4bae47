package driverdb

// Driver is one active-roster record from the driver-utilization sheet.
// The trailing placement fields are not tracked in the workbook and are
// always empty; they are kept so the output schema matches what the
// management app expects.
type Driver struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	HomeBase          string `json:"homeBase"`
	Position          string `json:"position"`
	Notes             string `json:"notes"`
	TWIC              string `json:"twic"`
	HiredCity         string `json:"hiredCity"`
	CurrentCity       string `json:"currentCity"`
	PreferredPartner  string `json:"preferredPartner"`
	RouteRestrictions string `json:"routeRestrictions"`
}

// Lead is one recruiting-lead record.
type Lead struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DateAccepted   string `json:"dateAccepted"`
	DateSentPhase2 string `json:"dateSentPhase2"`
	Position       string `json:"position"`
	Recruiter      string `json:"recruiter"`
	Notes          string `json:"notes"`
}

// OTRHire is one over-the-road new-hire onboarding record. Two source
// sheets feed this category and are deduplicated after the union.
type OTRHire struct {
	ID         string `json:"id"`
	Passed     string `json:"passed"`
	Name       string `json:"name"`
	Age        string `json:"age"`
	Position   string `json:"position"`
	YOE        string `json:"yoe"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	AJGCH      string `json:"ajgCH"`
	GHCH       string `json:"ghCH"`
	I9         string `json:"i9"`
	NHPW       string `json:"nhpw"`
	AJGDT      string `json:"ajgDT"`
	GHDT       string `json:"ghDT"`
	Onboarding string `json:"onboarding"`
	Insurance  string `json:"insurance"`
	GTG        string `json:"gtg"`
	Dispatched string `json:"dispatched"`
	Notes      string `json:"notes"`
	RTGDate    string `json:"rtgDate"`
}

// AG4Hire is one AG4-division new-hire onboarding record.
type AG4Hire struct {
	ID         string `json:"id"`
	Passed     string `json:"passed"`
	Name       string `json:"name"`
	Age        string `json:"age"`
	Position   string `json:"position"`
	YOE        string `json:"yoe"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	RTGDate    string `json:"rtgDate"`
	NHPW       string `json:"nhpw"`
	I9         string `json:"i9"`
	AG4DT      string `json:"ag4DT"`
	DOTMedical string `json:"dotMedical"`
	Onboarding string `json:"onboarding"`
	Insurance  string `json:"insurance"`
	GTG        string `json:"gtg"`
	Dispatched string `json:"dispatched"`
	Notes      string `json:"notes"`
}

// AG4Separation is one AG4-division separation record.
type AG4Separation struct {
	ID         string `json:"id"`
	Passed     string `json:"passed"`
	Name       string `json:"name"`
	NHPW       string `json:"nhpw"`
	AG4DT      string `json:"ag4DT"`
	Onboarding string `json:"onboarding"`
	Insurance  string `json:"insurance"`
	GTG        string `json:"gtg"`
	Dispatched string `json:"dispatched"`
	Notes      string `json:"notes"`
	RTGDate    string `json:"rtgDate"`
	ReturnDate string `json:"returnDate"`
	Location   string `json:"location"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
}

// HistoricalDriver is one record from the historical-drivers sheet.
type HistoricalDriver struct {
	ID              string `json:"id"`
	LastName        string `json:"lastName"`
	FirstName       string `json:"firstName"`
	Position        string `json:"position"`
	TerminationDate string `json:"terminationDate"`
	Incentives      string `json:"incentives"`
}
