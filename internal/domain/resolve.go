package domain

import (
	"regexp"
	"strings"
)

// fipsRe accepts pre-supplied FIPS codes: 4 or 5 digits (a leading zero is
// often dropped upstream and restored by padFIPS).
var fipsRe = regexp.MustCompile(`^\d{4,5}$`)

// Resolve maps one candidate row to its terminal form: a resolved record
// with a FIPS code attached, or an unresolved record carrying the fully
// cleaned name for diagnosis. Exactly one of the returns is non-nil.
//
// A row that already carries a valid FIPS code from the source data is
// trusted as-is; its name is still cleaned for display consistency but the
// registry is not consulted.
func Resolve(row CandidateCountyRow, index CountyIndex) (*ResolvedCountyRecord, *UnresolvedRecord) {
	cleaned := row.withCounty(CleanCountyName(row.State, row.CountyName))

	if fipsRe.MatchString(row.CountyFIPS) {
		return resolved(cleaned, padFIPS(row.CountyFIPS), "supplied"), nil
	}

	if fips, ok := index.Lookup(cleaned.State, cleaned.CountyName); ok {
		return resolved(cleaned, fips, "registry"), nil
	}

	reason := ReasonNoRegistryMatch
	if len(index.AllCountiesOf(cleaned.State)) == 0 {
		reason = ReasonUnknownState
	}
	return nil, &UnresolvedRecord{CandidateCountyRow: cleaned, Reason: reason}
}

func resolved(row CandidateCountyRow, fips, source string) *ResolvedCountyRecord {
	return &ResolvedCountyRecord{
		CandidateCountyRow: row,
		Storm:              NormalizeStormName(row.EventName),
		FIPS:               fips,
		FIPSSource:         source,
		ResolvedAt:         clock.Now(),
	}
}

// CleanCountyName applies the full name-cleaning sequence: suffix strip,
// misspelling corrections, spelling conventions, then state-specific
// overrides. The sequence is idempotent; re-cleaning an already clean name
// returns it unchanged.
func CleanCountyName(state, countyName string) string {
	name := strings.TrimSpace(countyName)
	name = stripCountySuffix(name)
	name = applyReplacements(name, misspellingCorrections)
	for _, conv := range spellingConventions {
		name = conv.re.ReplaceAllString(name, conv.repl)
	}
	if overrides, ok := stateNameOverrides[state]; ok {
		if canonical, ok := overrides[name]; ok {
			name = canonical
		}
	}
	return name
}

// stripCountySuffix removes one trailing suffix from the fixed
// case-sensitive set, longest first.
func stripCountySuffix(name string) string {
	for _, suffix := range countySuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(name, suffix))
		}
	}
	return name
}

// padFIPS left-pads a numeric FIPS code to the canonical 5 digits.
func padFIPS(fips string) string {
	for len(fips) < 5 {
		fips = "0" + fips
	}
	return fips
}
