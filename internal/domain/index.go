package domain

// CountyIndex is the read-only view of the geographic reference registry the
// resolution stages depend on. Implementations must be safe for concurrent
// lookups.
type CountyIndex interface {
	// Lookup returns the FIPS code for a (state, county-name) pair.
	Lookup(state, countyName string) (fips string, ok bool)

	// AllCountiesOf returns every county name known for a state, in registry
	// order. An unknown state returns an empty slice.
	AllCountiesOf(state string) []string
}
