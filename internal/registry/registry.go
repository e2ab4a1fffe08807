// Package registry loads and indexes the authoritative state → county → FIPS
// reference table. The registry is built once from a census-style CSV source
// and is read-only afterwards, safe for concurrent lookups.
package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one (state, county, FIPS) triple from the reference source.
// County names are stored canonically: title-cased, "County"/"Parish"
// suffix stripped, independent cities with a "City" suffix.
type Entry struct {
	State  string
	County string
	FIPS   string
}

// Registry indexes reference entries by (state, county) and by state.
type Registry struct {
	fipsByKey       map[string]string
	countiesByState map[string][]string
	entries         int
}

// New builds a registry from already-canonical entries. Duplicate
// (state, county) keys keep the first entry seen (first-wins); later
// duplicates are dropped.
func New(entries []Entry) *Registry {
	g := &Registry{
		fipsByKey:       make(map[string]string, len(entries)),
		countiesByState: make(map[string][]string),
	}
	for _, e := range entries {
		k := key(e.State, e.County)
		if _, dup := g.fipsByKey[k]; dup {
			continue
		}
		g.fipsByKey[k] = e.FIPS
		g.countiesByState[e.State] = append(g.countiesByState[e.State], e.County)
		g.entries++
	}
	return g
}

// Load reads a reference CSV with (at least) the columns state, county, and
// fips, canonicalizes each county name, and builds the registry. It returns
// an error for unreadable input, a missing column, or a source with no
// usable rows; the caller must treat that as fatal.
func Load(r io.Reader) (*Registry, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read reference source: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("reference source has no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"state", "county", "fips"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("reference source missing %q column", col)
		}
	}

	title := cases.Title(language.AmericanEnglish)
	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		state := strings.ToUpper(strings.TrimSpace(row[colIdx["state"]]))
		county := canonicalCountyName(row[colIdx["county"]], title)
		fips := strings.TrimSpace(row[colIdx["fips"]])
		if state == "" || county == "" || fips == "" {
			continue
		}
		for len(fips) < 5 {
			fips = "0" + fips
		}
		entries = append(entries, Entry{State: state, County: county, FIPS: fips})
	}
	if len(entries) == 0 {
		return nil, errors.New("reference source has no usable rows")
	}

	return New(entries), nil
}

// Lookup returns the FIPS code for a (state, county) pair.
func (g *Registry) Lookup(state, countyName string) (string, bool) {
	fips, ok := g.fipsByKey[key(state, countyName)]
	return fips, ok
}

// AllCountiesOf returns every county known for a state, in source order.
// The returned slice is a copy; callers may not reach the index through it.
func (g *Registry) AllCountiesOf(state string) []string {
	return slices.Clone(g.countiesByState[state])
}

// Len reports the number of indexed entries.
func (g *Registry) Len() int {
	return g.entries
}

// canonicalCountyName converts a source county name to the registry's
// canonical form: "County"/"Parish" suffix stripped, the census "city"
// suffix capitalized, and all-caps names title-cased. Mixed-case names pass
// through untouched so spellings like "DeSoto" survive.
func canonicalCountyName(name string, title cases.Caser) string {
	name = strings.TrimSpace(name)
	if name != "" && name == strings.ToUpper(name) {
		name = title.String(strings.ToLower(name))
	}
	for _, suffix := range []string{" County", " Parish"} {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}
	if strings.HasSuffix(name, " city") {
		name = strings.TrimSuffix(name, " city") + " City"
	}
	return strings.TrimSpace(name)
}

func key(state, county string) string {
	return state + "|" + county
}
