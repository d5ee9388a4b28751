package launch

// Filter returns the records matching both the site and payload filters of
// sel, in input order.
//
// The result is always a new slice. An inverted or NaN range, or a site that
// does not occur in records, yields an empty result.
func Filter(records []Record, sel Selection) []Record {
	out := make([]Record, 0, len(records))
	allSites := sel.AllSitesSelected()
	for _, record := range records {
		if !allSites && record.Site != sel.Site {
			continue
		}
		if !inRange(record.PayloadMass, sel.Low, sel.High) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// inRange is false for NaN on either side because NaN comparisons are false.
func inRange(value, low, high float64) bool {
	return value >= low && value <= high
}
