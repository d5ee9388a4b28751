package launch

// Proportions groups records for the proportion chart.
//
// With every site selected it counts successful launches per site. With a
// single site selected it counts that site's successes and failures. The
// payload range of sel is ignored in both cases. Slices appear in the order
// their grouping key is first seen and zero counts are never emitted.
func Proportions(records []Record, sel Selection) []Slice {
	if sel.AllSitesSelected() {
		return countBy(records, func(r Record) (string, bool) {
			return r.Site, r.Outcome == Success
		})
	}
	return countBy(records, func(r Record) (string, bool) {
		return r.Outcome.String(), r.Site == sel.Site
	})
}

// Correlation projects every record that passes Filter into a scatter point.
func Correlation(records []Record, sel Selection) []Point {
	matched := Filter(records, sel)
	points := make([]Point, 0, len(matched))
	for _, record := range matched {
		points = append(points, Point{
			PayloadMass:     record.PayloadMass,
			Outcome:         record.Outcome,
			BoosterCategory: record.BoosterCategory,
		})
	}
	return points
}

// BoosterCategories lists the distinct booster categories of points in
// first-appearance order.
func BoosterCategories(points []Point) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range points {
		if _, ok := seen[p.BoosterCategory]; ok {
			continue
		}
		seen[p.BoosterCategory] = struct{}{}
		out = append(out, p.BoosterCategory)
	}
	return out
}

// countBy counts records by the key returned from keyOf, skipping records for
// which keyOf reports false.
func countBy(records []Record, keyOf func(Record) (string, bool)) []Slice {
	slices := make([]Slice, 0)
	index := make(map[string]int)
	for _, record := range records {
		key, ok := keyOf(record)
		if !ok {
			continue
		}
		pos, seen := index[key]
		if !seen {
			pos = len(slices)
			index[key] = pos
			slices = append(slices, Slice{Label: key})
		}
		slices[pos].Count++
	}
	return slices
}

// Total sums the counts of slices.
func Total(slices []Slice) int {
	total := 0
	for _, slice := range slices {
		total += slice.Count
	}
	return total
}
