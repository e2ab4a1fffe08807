package domain

import "strings"

// connectorGuard is substituted for the connector word inside protected
// county names while the surrounding list is split. It never occurs in
// source data.
const connectorGuard = "\x00"

// NormalizeCounties turns one raw alert record into zero or more candidate
// county rows, one per county named in the free-text field. The stages run
// in a fixed order: guard protected names, normalize connectors to commas,
// split, reject known non-county fragments, apply fragment corrections
// (re-splitting when a correction introduces a comma), and strip trailing
// periods. A record with a missing county field yields exactly one row
// carrying the Statewide sentinel.
func NormalizeCounties(rec RawAlertRecord) []CandidateCountyRow {
	if rec.CountyText == nil {
		return []CandidateCountyRow{candidate(rec, Statewide)}
	}

	rows := make([]CandidateCountyRow, 0, 4)
	for _, fragment := range splitCountyList(*rec.CountyText) {
		rows = append(rows, candidate(rec, fragment))
	}
	return rows
}

// splitCountyList breaks a raw county-list string into cleaned fragments.
func splitCountyList(text string) []string {
	guarded := guardProtectedNames(text)
	guarded = strings.ReplaceAll(guarded, " and ", ",")
	guarded = strings.ReplaceAll(guarded, "&", ",")
	guarded = strings.ReplaceAll(guarded, ";", ",")
	text = strings.ReplaceAll(guarded, connectorGuard, " and ")

	var fragments []string
	for _, raw := range strings.Split(text, ",") {
		fragments = append(fragments, cleanFragments(raw)...)
	}
	return fragments
}

// cleanFragments trims, rejects, and corrects one raw fragment. It returns
// zero fragments for rejected input and more than one when a correction
// reintroduces a comma separator.
func cleanFragments(raw string) []string {
	fragment := strings.TrimSpace(raw)
	if rejectFragment(fragment) {
		return nil
	}

	corrected := applyReplacements(fragment, fragmentCorrections)
	if strings.Contains(corrected, ",") {
		// A correction restored a dropped separator; split once more.
		var out []string
		for _, part := range strings.Split(corrected, ",") {
			part = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), "."))
			if !rejectFragment(part) {
				out = append(out, part)
			}
		}
		return out
	}

	corrected = strings.TrimSpace(strings.TrimSuffix(corrected, "."))
	if rejectFragment(corrected) {
		return nil
	}
	return []string{corrected}
}

// rejectFragment reports whether a fragment is on the fixed rejection list:
// empty strings and placeholder phrases that name no county.
func rejectFragment(fragment string) bool {
	lower := strings.ToLower(fragment)
	if _, ok := rejectedFragments[lower]; ok {
		return true
	}
	return countyCountRe.MatchString(fragment)
}

// guardProtectedNames replaces the connector word inside protected county
// names with a placeholder so list splitting cannot break the name apart.
func guardProtectedNames(text string) string {
	for _, name := range protectedConnectorNames {
		if !strings.Contains(text, name) {
			continue
		}
		guarded := strings.ReplaceAll(name, " and ", connectorGuard)
		text = strings.ReplaceAll(text, name, guarded)
	}
	return text
}

// applyReplacements runs ordered substring substitutions over s.
func applyReplacements(s string, table []replacement) string {
	for _, r := range table {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}
