// Package region maps free-text and postal location hints from job
// postings onto internal region identifiers.
package region

import (
	"regexp"
	"strings"
)

// Resolver derives a French department from a location hint and resolves
// it to a region identifier through a Lookup. Results, including misses,
// are memoized for the resolver's lifetime, so repeated postal codes
// across one ingestion run cost at most one lookup. Not safe for
// concurrent use.
type Resolver struct {
	lookup Lookup
	cache  map[string]*int
}

// NewResolver builds a Resolver backed by lookup. A nil lookup uses the
// built-in Catalog.
func NewResolver(lookup Lookup) *Resolver {
	if lookup == nil {
		lookup = Catalog{}
	}
	return &Resolver{lookup: lookup, cache: make(map[string]*int)}
}

// Resolve maps a postal code and a free-text label to a region id. Rules
// apply in order: department derived from the postal code, leading
// department code in the label, then a known city name in the label. The
// first rule that yields a resolvable department wins; when none does,
// Resolve returns nil, which is a normal outcome for partial upstream
// data, not an error.
func (r *Resolver) Resolve(postalCode, label string) *int {
	for _, dept := range candidateDepartments(postalCode, label) {
		if id, ok := r.resolveDepartment(dept); ok {
			return id
		}
	}
	return nil
}

// resolveDepartment returns the memoized region id for one department
// code. The second return reports whether the department resolved, so an
// unknown code falls through to the next rule.
func (r *Resolver) resolveDepartment(dept string) (*int, bool) {
	if id, ok := r.cache[dept]; ok {
		return id, id != nil
	}

	var result *int
	if code, ok := departmentRegions[dept]; ok {
		if id, ok := r.lookup.FindByCode(code); ok {
			result = &id
		}
	}
	r.cache[dept] = result
	return result, result != nil
}

func candidateDepartments(postalCode, label string) []string {
	var depts []string
	if d := departmentFromPostal(postalCode); d != "" {
		depts = append(depts, d)
	}
	if d := departmentFromLabel(label); d != "" {
		depts = append(depts, d)
	}
	if d := departmentFromCity(label); d != "" {
		depts = append(depts, d)
	}
	return depts
}

// departmentFromPostal reads the department out of a five-digit postal
// code. Overseas codes keep three digits, and Corsican codes split into
// 2A/2B at 20200.
func departmentFromPostal(postal string) string {
	postal = strings.TrimSpace(postal)
	if len(postal) != 5 {
		return ""
	}
	for _, r := range postal {
		if r < '0' || r > '9' {
			return ""
		}
	}

	switch {
	case strings.HasPrefix(postal, "97"), strings.HasPrefix(postal, "98"):
		return postal[:3]
	case strings.HasPrefix(postal, "20"):
		if postal < "20200" {
			return "2A"
		}
		return "2B"
	default:
		return postal[:2]
	}
}

// Labels commonly lead with the department: "33 - BORDEAUX", "974 - ST
// DENIS", "2A - AJACCIO".
var labelDeptPattern = regexp.MustCompile(`(?i)^\s*(2[ab]|[0-9]{2,3})(?:\s*-|\s|$)`)

func departmentFromLabel(label string) string {
	m := labelDeptPattern.FindStringSubmatch(label)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

func departmentFromCity(label string) string {
	lowered := strings.ToLower(label)
	for _, c := range cityDepartments {
		if strings.Contains(lowered, c.City) {
			return c.Dept
		}
	}
	return ""
}
