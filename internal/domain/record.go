package domain

import (
	"maps"
	"regexp"
	"strings"
	"time"
)

// Statewide is the sentinel county name meaning "every county in the state".
// The normalizer emits it for orders with a missing county field and for
// whole-state phrases; the expander replaces it with one row per county.
const Statewide = "STATEWIDE"

// RawAlertRecord is one row of the source evacuation-order file, immutable
// once read. CountyText is nil when the source field was missing (NA); an
// empty string is a present-but-blank field and is treated differently.
type RawAlertRecord struct {
	EventName  string            `json:"event_name"` // as published, e.g. "Hurricane Harvey"
	State      string            `json:"state"`      // two-letter USPS abbreviation
	CountyText *string           `json:"county_text"`
	CountyFIPS string            `json:"county_fips"` // pre-researched code, "" when absent
	Year       int               `json:"year"`
	Extra      map[string]string `json:"extra,omitempty"` // passthrough columns, by header name
}

// CandidateCountyRow is one (record, county-name) pair produced by the
// normalizer. CountyName is a single cleaned fragment or the Statewide
// sentinel; every other field is carried from the raw record unchanged.
type CandidateCountyRow struct {
	EventName  string            `json:"event_name"`
	State      string            `json:"state"`
	CountyName string            `json:"county_name"`
	CountyFIPS string            `json:"county_fips"`
	Year       int               `json:"year"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// IsStatewide reports whether the row still carries the whole-state sentinel.
func (r CandidateCountyRow) IsStatewide() bool {
	return r.CountyName == Statewide
}

// ResolvedCountyRecord is a candidate row with its county name fully cleaned
// and a FIPS code attached. FIPSSource records how the code was obtained:
// "supplied" (trusted from the source row) or "registry" (looked up).
type ResolvedCountyRecord struct {
	CandidateCountyRow

	Storm      string    `json:"storm"` // join key: event name without "Hurricane " prefix
	FIPS       string    `json:"fips"`
	FIPSSource string    `json:"fips_source"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Unresolved reasons.
const (
	ReasonUnknownState    = "unknown_state"
	ReasonNoRegistryMatch = "no_registry_match"
)

// UnresolvedRecord is a candidate row for which no FIPS code could be
// determined. CountyName holds the fully-transformed name so the failure is
// diagnosable against the correction tables.
type UnresolvedRecord struct {
	CandidateCountyRow

	Reason string `json:"reason"`
}

// hurricanePrefixRe strips the event-type prefix from storm names,
// case-insensitively: "Hurricane Harvey" and "HURRICANE IKE" both match.
var hurricanePrefixRe = regexp.MustCompile(`(?i)^hurricane\s+`)

// NormalizeStormName returns the join-key form of an event name: surrounding
// whitespace trimmed and any leading "Hurricane " prefix removed.
func NormalizeStormName(eventName string) string {
	return hurricanePrefixRe.ReplaceAllString(strings.TrimSpace(eventName), "")
}

// candidate builds one CandidateCountyRow from a raw record, copying the
// passthrough map so derived rows never share mutable state.
func candidate(rec RawAlertRecord, countyName string) CandidateCountyRow {
	return CandidateCountyRow{
		EventName:  rec.EventName,
		State:      rec.State,
		CountyName: countyName,
		CountyFIPS: rec.CountyFIPS,
		Year:       rec.Year,
		Extra:      maps.Clone(rec.Extra),
	}
}

// withCounty returns a copy of the row with a different county name,
// cloning the passthrough map.
func (r CandidateCountyRow) withCounty(countyName string) CandidateCountyRow {
	out := r
	out.CountyName = countyName
	out.Extra = maps.Clone(r.Extra)
	return out
}
