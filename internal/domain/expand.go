package domain

import (
	"log/slog"
	"strings"
)

// ExpandStatewide replaces every whole-state row with one row per county the
// registry lists for that state, copying all non-geographic attributes
// unchanged. Rows naming a specific county pass through untouched. A
// statewide row for a state the registry does not know is forwarded as-is
// (it will surface as an unresolved record downstream) and logged.
func ExpandStatewide(rows []CandidateCountyRow, index CountyIndex, logger *slog.Logger) []CandidateCountyRow {
	out := make([]CandidateCountyRow, 0, len(rows))
	for _, row := range rows {
		if !IsStatewidePhrase(row.CountyName) {
			out = append(out, row)
			continue
		}

		counties := index.AllCountiesOf(row.State)
		if len(counties) == 0 {
			logger.Warn("cannot expand statewide order, state not in registry",
				"state", row.State,
				"event", row.EventName,
				"year", row.Year,
			)
			out = append(out, row)
			continue
		}

		for _, county := range counties {
			expanded := row.withCounty(county)
			// A single pre-supplied FIPS cannot apply to every county in
			// the state; force a registry lookup for expanded rows.
			expanded.CountyFIPS = ""
			out = append(out, expanded)
		}
	}
	return out
}

// IsStatewidePhrase reports whether a county name is the Statewide sentinel
// or one of the fixed whole-state phrases.
func IsStatewidePhrase(countyName string) bool {
	_, ok := statewideVocabulary[strings.ToLower(strings.TrimSpace(countyName))]
	return ok
}
