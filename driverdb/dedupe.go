package driverdb

import "strings"

// otrIdentity is the composite key under which two OTR records are
// treated as certain duplicates: the two source sheets overlap, and
// simultaneous equality of these four normalized fields marks the same
// hire recorded twice.
type otrIdentity struct {
	name    string // lower-cased
	phone   string
	passed  string
	rtgDate string
}

// dedupeOTR collapses duplicate OTR records, keeping the first
// occurrence, then renumbers the survivors otr_1..n so the sequence has
// no gaps. Dropped duplicates are expected, not an error.
func dedupeOTR(records []OTRHire) []OTRHire {
	seen := make(map[otrIdentity]struct{}, len(records))
	out := make([]OTRHire, 0, len(records))
	for _, r := range records {
		key := otrIdentity{
			name:    strings.ToLower(r.Name),
			phone:   r.Phone,
			passed:  r.Passed,
			rtgDate: r.RTGDate,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	for i := range out {
		out[i].ID = recordID("otr", i+1)
	}
	return out
}
