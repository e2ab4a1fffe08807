package domain

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExpandStatewide_SentinelRow(t *testing.T) {
	idx := testIndex()
	row := candidateRow("TX", Statewide)
	row.Extra = map[string]string{"source": "press_release"}

	out := ExpandStatewide([]CandidateCountyRow{row}, idx, discardLogger())

	require.Len(t, out, len(idx.AllCountiesOf("TX")))
	seen := map[string]bool{}
	for _, r := range out {
		seen[r.CountyName] = true
		assert.Equal(t, row.EventName, r.EventName)
		assert.Equal(t, row.State, r.State)
		assert.Equal(t, row.Year, r.Year)
		assert.Equal(t, row.Extra, r.Extra)
	}
	for _, county := range idx.AllCountiesOf("TX") {
		assert.True(t, seen[county], "missing county %s", county)
	}
}

func TestExpandStatewide_PhraseVariants(t *testing.T) {
	idx := testIndex()

	for _, phrase := range []string{"Statewide", "Entire State", "All Counties", "all parishes", "ALL"} {
		t.Run(phrase, func(t *testing.T) {
			out := ExpandStatewide([]CandidateCountyRow{candidateRow("FL", phrase)}, idx, discardLogger())
			assert.Len(t, out, len(idx.AllCountiesOf("FL")))
		})
	}
}

func TestExpandStatewide_SpecificRowsPassThrough(t *testing.T) {
	idx := testIndex()
	rows := []CandidateCountyRow{
		candidateRow("TX", "Harris"),
		candidateRow("TX", Statewide),
		candidateRow("TX", "Galveston"),
	}

	out := ExpandStatewide(rows, idx, discardLogger())

	want := 2 + len(idx.AllCountiesOf("TX"))
	assert.Len(t, out, want)
	assert.Equal(t, "Harris", out[0].CountyName)
	assert.Equal(t, "Galveston", out[len(out)-1].CountyName)
}

func TestExpandStatewide_UnknownStateForwarded(t *testing.T) {
	idx := testIndex()
	row := candidateRow("ZZ", Statewide)

	out := ExpandStatewide([]CandidateCountyRow{row}, idx, discardLogger())

	// Never silently dropped: the row survives unexpanded and fails
	// resolution downstream.
	require.Len(t, out, 1)
	assert.Equal(t, Statewide, out[0].CountyName)
}

func TestExpandStatewide_ClearsSuppliedFIPS(t *testing.T) {
	idx := testIndex()
	row := candidateRow("TX", Statewide)
	row.CountyFIPS = "48201"

	out := ExpandStatewide([]CandidateCountyRow{row}, idx, discardLogger())

	require.NotEmpty(t, out)
	for _, r := range out {
		assert.Empty(t, r.CountyFIPS)
	}
}

func TestIsStatewidePhrase(t *testing.T) {
	assert.True(t, IsStatewidePhrase(Statewide))
	assert.True(t, IsStatewidePhrase("Entire State"))
	assert.True(t, IsStatewidePhrase(" statewide "))
	assert.False(t, IsStatewidePhrase("Harris"))
	assert.False(t, IsStatewidePhrase(""))
}
