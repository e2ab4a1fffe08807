package csvfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAlerts(t *testing.T) {
	src := `storm,state,county,county_fips,year,source
Hurricane Harvey,TX,"Aransas, Calhoun",NA,2017,press_release
Hurricane Irma,fl,NA,NA,2017,news_archive
Hurricane Irma,FL,Monroe,12087,2017,press_release
`
	records, skipped, err := ReadAlerts(strings.NewReader(src), Options{})
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 3)

	t.Run("quoted county list", func(t *testing.T) {
		rec := records[0]
		assert.Equal(t, "Hurricane Harvey", rec.EventName)
		assert.Equal(t, "TX", rec.State)
		require.NotNil(t, rec.CountyText)
		assert.Equal(t, "Aransas, Calhoun", *rec.CountyText)
		assert.Empty(t, rec.CountyFIPS)
		assert.Equal(t, 2017, rec.Year)
		assert.Equal(t, map[string]string{"source": "press_release"}, rec.Extra)
	})

	t.Run("NA county is null and state is upcased", func(t *testing.T) {
		rec := records[1]
		assert.Equal(t, "FL", rec.State)
		assert.Nil(t, rec.CountyText)
	})

	t.Run("pre-supplied fips", func(t *testing.T) {
		assert.Equal(t, "12087", records[2].CountyFIPS)
	})
}

func TestReadAlerts_EmptyCountyIsNotNull(t *testing.T) {
	src := "storm,state,county,county_fips,year\nHurricane Ivan,AL,\"\",NA,2004\n"

	records, _, err := ReadAlerts(strings.NewReader(src), Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Present-but-empty is distinct from NA: the normalizer rejects it
	// instead of expanding it statewide.
	require.NotNil(t, records[0].CountyText)
	assert.Empty(t, *records[0].CountyText)
}

func TestReadAlerts_CustomDelimiter(t *testing.T) {
	src := "storm;state;county;year\nHurricane Rita;TX;Jefferson;2005\n"

	records, _, err := ReadAlerts(strings.NewReader(src), Options{Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CountyText)
	assert.Equal(t, "Jefferson", *records[0].CountyText)
}

func TestReadAlerts_Latin1(t *testing.T) {
	// "Cañada" with the Latin-1 byte 0xF1 for ñ.
	src := "storm,state,county,year\nHurricane Test,TX,Ca\xf1ada,2017\n"

	records, _, err := ReadAlerts(strings.NewReader(src), Options{Encoding: "latin1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CountyText)
	assert.Equal(t, "Cañada", *records[0].CountyText)
}

func TestReadAlerts_SkipsShortRows(t *testing.T) {
	src := "storm,state,county,year\nHurricane Rita,TX,Jefferson,2005\nHurricane Rita,TX\n"

	records, skipped, err := ReadAlerts(strings.NewReader(src), Options{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, skipped)
}

func TestReadAlerts_ColumnAliases(t *testing.T) {
	src := "Event_Name,State,County_Text,FIPS_Code,Year\nHurricane Ike,TX,Galveston,48167,2008\n"

	records, _, err := ReadAlerts(strings.NewReader(src), Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Hurricane Ike", rec.EventName)
	require.NotNil(t, rec.CountyText)
	assert.Equal(t, "Galveston", *rec.CountyText)
	assert.Equal(t, "48167", rec.CountyFIPS)
	assert.Equal(t, 2008, rec.Year)
	assert.Empty(t, rec.Extra)
}

func TestReadAlerts_Failures(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		_, _, err := ReadAlerts(strings.NewReader(""), Options{})
		require.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		_, _, err := ReadAlerts(strings.NewReader("storm,state,county,year\n"), Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data rows")
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		_, _, err := ReadAlerts(strings.NewReader("x"), Options{Encoding: "utf-16"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported encoding")
	})
}
