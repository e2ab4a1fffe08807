// Package domain models hurricane evacuation-order records and the rules
// that resolve their free-text county fields to canonical FIPS codes.
//
// # Data Source
//
// Evacuation orders are compiled by hand from state emergency-management
// press releases and news archives into a single delimited file, one row per
// alert. Each row names the storm, a two-letter state abbreviation, the year,
// and a free-text county field transcribed as published. The county field is
// the messy part: it may list one county, several counties joined by commas
// or connector words, a whole-state phrase, or nothing at all.
//
// # County Field Conventions
//
// List separators:
//
//	"Bryan, Camden, Chatham"        → three counties
//	"Aransas and Calhoun"           → connector word, two counties
//	"Brazoria & Galveston"          → ampersand, two counties
//	"Cameron; Willacy"              → semicolon, two counties
//
// A handful of county names contain a connector word themselves
// ("King and Queen", VA) and are guarded before connector splitting.
//
// Statewide phrases:
//
//	"Statewide", "Entire State", "All Counties", and close variants mean the
//	order covers every county in the state. A missing county field means the
//	same thing. An empty-but-present field ("") is a transcription artifact
//	and contributes no rows at all.
//
// Known defects:
//
//	Transcription typos ("Coma!" for Comal, "Galvaston" for Galveston),
//	missing list commas ("Jasper Newton"), trailing periods from OCR, and
//	filler phrases like "14 counties" that name no county. All corrections
//	and rejections are fixed lookup tables, not heuristics; an unknown
//	malformed fragment flows through and surfaces as an unresolved record.
//
// # FIPS Codes
//
// A FIPS code is the 5-digit federal identifier of a county or
// county-equivalent, zero-padded ("01001" Autauga, AL). Some source rows
// carry a pre-researched FIPS code; those are trusted as-is. Everything else
// is looked up in the reference registry, which stores county names
// title-cased with the "County"/"Parish" suffix stripped, the same shape the
// resolver's cleaning steps produce.
//
// # Join Keys
//
// Downstream exposure and treatment-effect datasets join on
// (Storm, FIPS, Year), where Storm is the event name without its
// "Hurricane " prefix. See [NormalizeStormName].
package domain
