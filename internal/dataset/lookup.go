package dataset

import "sort"

// Lookup maps a city name, used as-is, to its commentary. Two cities with the
// same name in different states share one entry.
type Lookup map[string]Commentary

// BuildLookup indexes commentary records by city. A later record for the same
// city replaces an earlier one.
func BuildLookup(records []Commentary) Lookup {
	lookup := make(Lookup, len(records))
	for _, rec := range records {
		lookup[rec.City] = rec
	}
	return lookup
}

// For returns the commentary for the location's city, ignoring its state.
func (l Lookup) For(loc Location) (Commentary, bool) {
	c, ok := l[loc.City]
	return c, ok
}

// Companies returns the distinct company names, sorted byte-wise
// (case-sensitive).
func Companies(locations []Location) []string {
	seen := make(map[string]bool)
	var companies []string
	for _, loc := range locations {
		if seen[loc.Company] {
			continue
		}
		seen[loc.Company] = true
		companies = append(companies, loc.Company)
	}
	sort.Strings(companies)
	return companies
}

// CountByCompany returns how many locations carry each company name.
func CountByCompany(locations []Location) map[string]int {
	counts := make(map[string]int)
	for _, loc := range locations {
		counts[loc.Company]++
	}
	return counts
}
