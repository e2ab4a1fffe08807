package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/sofiavega98/HHSS-health-impacts/internal/domain"
)

// WriteResolved writes the clean dataset, one row per (storm, county, year),
// keyed for downstream equality joins on (storm, fips, year). Passthrough
// columns follow the fixed columns, sorted by header name for stable output.
func WriteResolved(w io.Writer, records []domain.ResolvedCountyRecord) error {
	extras := extraColumns(len(records), func(i int) map[string]string { return records[i].Extra })

	cw := csv.NewWriter(w)
	header := append([]string{"storm", "state", "county", "fips", "fips_source", "year"}, extras...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write resolved header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Storm,
			rec.State,
			rec.CountyName,
			rec.FIPS,
			rec.FIPSSource,
			strconv.Itoa(rec.Year),
		}
		for _, col := range extras {
			row = append(row, rec.Extra[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write resolved row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteUnresolved writes the audit dataset: the rows dropped from the clean
// output, with the fully-cleaned county name and the failure reason. The
// drop is this explicit artifact, never an implicit loss.
func WriteUnresolved(w io.Writer, records []domain.UnresolvedRecord) error {
	extras := extraColumns(len(records), func(i int) map[string]string { return records[i].Extra })

	cw := csv.NewWriter(w)
	header := append([]string{"event_name", "state", "county", "year", "reason"}, extras...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write unresolved header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.EventName,
			rec.State,
			rec.CountyName,
			strconv.Itoa(rec.Year),
			rec.Reason,
		}
		for _, col := range extras {
			row = append(row, rec.Extra[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write unresolved row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// extraColumns returns the sorted union of passthrough column names.
func extraColumns(n int, extra func(int) map[string]string) []string {
	seen := map[string]struct{}{}
	for i := 0; i < n; i++ {
		for col := range extra(i) {
			seen[col] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
