package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceCSV = `state,county,fips
TX,Harris County,48201
TX,Galveston County,48167
LA,Cameron Parish,22023
LA,St. John the Baptist Parish,22095
FL,DeSoto County,12027
VA,Suffolk city,51800
AL,BALDWIN COUNTY,01003
`

func TestLoad(t *testing.T) {
	reg, err := Load(strings.NewReader(referenceCSV))
	require.NoError(t, err)
	assert.Equal(t, 7, reg.Len())

	tests := []struct {
		state  string
		county string
		fips   string
	}{
		{"TX", "Harris", "48201"},
		{"LA", "Cameron", "22023"},
		{"LA", "St. John the Baptist", "22095"},
		{"FL", "DeSoto", "12027"},       // mixed case preserved
		{"VA", "Suffolk City", "51800"}, // census "city" suffix capitalized
		{"AL", "Baldwin", "01003"},      // all-caps source title-cased
	}
	for _, tc := range tests {
		fips, ok := reg.Lookup(tc.state, tc.county)
		require.True(t, ok, "missing %s/%s", tc.state, tc.county)
		assert.Equal(t, tc.fips, fips)
	}

	_, ok := reg.Lookup("TX", "Harris County")
	assert.False(t, ok, "suffixed form must not be indexed")
}

func TestLoad_PadsFIPS(t *testing.T) {
	reg, err := Load(strings.NewReader("state,county,fips\nAL,Baldwin County,1003\n"))
	require.NoError(t, err)

	fips, ok := reg.Lookup("AL", "Baldwin")
	require.True(t, ok)
	assert.Equal(t, "01003", fips)
}

func TestLoad_DuplicateKeyFirstWins(t *testing.T) {
	src := "state,county,fips\nTX,Harris County,48201\nTX,Harris County,99999\n"
	reg, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	fips, ok := reg.Lookup("TX", "Harris")
	require.True(t, ok)
	assert.Equal(t, "48201", fips)
	assert.Equal(t, []string{"Harris"}, reg.AllCountiesOf("TX"))
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty source", "", "no data rows"},
		{"header only", "state,county,fips\n", "no data rows"},
		{"missing column", "state,name\nTX,Harris\n", `missing "county" column`},
		{"blank rows only", "state,county,fips\n,,\nTX,,48201\n", "no usable rows"},
		{"ragged csv", "state,county,fips\nTX,Harris\n", "read reference source"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestAllCountiesOf(t *testing.T) {
	reg, err := Load(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	t.Run("source order", func(t *testing.T) {
		assert.Equal(t, []string{"Harris", "Galveston"}, reg.AllCountiesOf("TX"))
		assert.Equal(t, []string{"Cameron", "St. John the Baptist"}, reg.AllCountiesOf("LA"))
	})

	t.Run("unknown state", func(t *testing.T) {
		assert.Empty(t, reg.AllCountiesOf("ZZ"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := reg.AllCountiesOf("TX")
		first[0] = "mutated"
		assert.Equal(t, []string{"Harris", "Galveston"}, reg.AllCountiesOf("TX"))
	})
}

func TestNew_SyntheticEntries(t *testing.T) {
	reg := New([]Entry{
		{State: "GA", County: "Bryan", FIPS: "13029"},
		{State: "GA", County: "Camden", FIPS: "13039"},
	})

	fips, ok := reg.Lookup("GA", "Camden")
	require.True(t, ok)
	assert.Equal(t, "13039", fips)
	assert.Equal(t, 2, reg.Len())
}
