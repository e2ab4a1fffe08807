package domain

import "regexp"

// The tables below are the complete rule set for county-name cleanup. They
// are data, not logic: extending coverage after an unresolved-record audit
// means adding an entry here, never touching the algorithm. Corrections are
// held in slices, not maps, because they are substring replacements applied
// in a fixed order and map iteration order is not deterministic.

// protectedConnectorNames are county names that contain a connector word and
// must survive connector-to-comma normalization intact. Each occurrence is
// guarded with a placeholder before splitting and restored afterwards.
var protectedConnectorNames = []string{
	"King and Queen", // VA
}

// rejectedFragments are fragments that name no county and contribute zero
// candidate rows. Matched case-insensitively after trimming.
var rejectedFragments = map[string]struct{}{
	"":                  {},
	"tbd":               {},
	"unknown":           {},
	"multiple counties": {},
	"several counties":  {},
}

// countyCountRe matches filler phrases that report a count instead of names,
// e.g. "14 counties". Rejected alongside rejectedFragments.
var countyCountRe = regexp.MustCompile(`(?i)^\d+\s+count(?:y|ies)$`)

// replacement is one ordered substring substitution.
type replacement struct {
	old string
	new string
}

// fragmentCorrections fix malformed fragments before the final split pass.
// A correction may introduce a comma (a transcription dropped one), in which
// case the corrected fragment is split again.
var fragmentCorrections = []replacement{
	{"Coma!", "Comal"},                                // TX, garbled transcription
	{"Jasper Newton", "Jasper, Newton"},               // TX, missing list comma
	{"Sabine/San Augustine", "Sabine, San Augustine"}, // TX, slash used as separator
}

// countySuffixes are stripped from the end of a fragment before lookup,
// longest first so "Counties" wins over "County". The set is case-sensitive;
// only these exact forms occur in the source data.
var countySuffixes = []string{
	" Counties",
	" counties",
	" County",
	" county",
	" Parish",
	" parish",
}

// misspellingCorrections map known transcription typos to the correct name.
// Applied as exact substring replacements in order.
var misspellingCorrections = []replacement{
	{"Galvaston", "Galveston"},    // TX
	{"Harrris", "Harris"},         // TX
	{"Matagora", "Matagorda"},     // TX
	{"Okaloossa", "Okaloosa"},     // FL
	{"Beaureguard", "Beauregard"}, // LA
}

// spellingConventions normalize abbreviation styles to the registry's
// conventions: "St Lucie" and "Saint Lucie" both become "St. Lucie".
var spellingConventions = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\bSt ([A-Z])`), "St. $1"},
	{regexp.MustCompile(`\bSaint ([A-Z])`), "St. $1"},
}

// stateNameOverrides are state-specific rewrites applied after the general
// corrections. Virginia's independent cities are county-equivalents the
// registry lists with a "City" suffix; Louisiana's "St. John" is ambiguous
// shorthand for St. John the Baptist; the De Soto / DeSoto spelling differs
// by state in the federal registry.
var stateNameOverrides = map[string]map[string]string{
	"VA": {
		"Suffolk":        "Suffolk City",
		"Chesapeake":     "Chesapeake City",
		"Hampton":        "Hampton City",
		"Newport News":   "Newport News City",
		"Norfolk":        "Norfolk City",
		"Poquoson":       "Poquoson City",
		"Portsmouth":     "Portsmouth City",
		"Virginia Beach": "Virginia Beach City",
	},
	"LA": {
		"St. John": "St. John the Baptist",
		"DeSoto":   "De Soto",
	},
	"FL": {
		"De Soto": "DeSoto",
	},
	"MS": {
		"De Soto": "DeSoto",
	},
}

// statewideVocabulary are the whole-state phrases the expander recognizes,
// lower-cased. The Statewide sentinel itself is included so already-marked
// rows (missing county field) take the same path.
var statewideVocabulary = map[string]struct{}{
	"statewide":    {},
	"entire state": {},
	"whole state":  {},
	"all counties": {},
	"all parishes": {},
	"all":          {},
}
