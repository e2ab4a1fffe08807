// Command validate performs end-to-end integrity checks over a resolution
// run: the raw alert file, the clean dataset, and the unresolved audit file.
// It verifies that the pipeline reproduces the written outputs, that every
// candidate row is accounted for exactly once, that join keys are unique and
// registry-backed, and that passthrough values survived untouched.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -input data/mock/alerts.csv \
//	  -reference data/mock/reference.csv \
//	  -resolved resolved_counties.csv \
//	  -unresolved unresolved_counties.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sofiavega98/HHSS-health-impacts/internal/adapter/csvfile"
	"github.com/sofiavega98/HHSS-health-impacts/internal/domain"
	"github.com/sofiavega98/HHSS-health-impacts/internal/observability"
	"github.com/sofiavega98/HHSS-health-impacts/internal/pipeline"
	"github.com/sofiavega98/HHSS-health-impacts/internal/registry"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	input := flag.String("input", "", "path to the raw alert file")
	reference := flag.String("reference", "", "path to the FIPS reference file")
	resolved := flag.String("resolved", "", "path to the clean dataset")
	unresolved := flag.String("unresolved", "", "path to the unresolved audit file")
	flag.Parse()

	if *input == "" || *reference == "" || *resolved == "" || *unresolved == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*input, *reference, *resolved, *unresolved); code != 0 {
		os.Exit(code)
	}
}

func run(inputPath, referencePath, resolvedPath, unresolvedPath string) int {
	reg, err := loadRegistry(referencePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	records, skipped, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}
	if skipped > 0 {
		fmt.Printf("note: %d malformed input rows skipped\n", skipped)
	}

	resolvedRows, err := readTable(resolvedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}
	unresolvedRows, err := readTable(unresolvedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	// Re-run the pipeline quietly to reproduce the expected outputs.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	result := pipeline.New(reg, logger, observability.NewMetricsForTesting()).Run(records)

	phases := []*phase{
		checkCounts(result, resolvedRows, unresolvedRows),
		checkJoinKeys(reg, resolvedRows),
		checkPassthrough(records, resolvedRows),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, msg := range p.errors {
			fmt.Printf("  - %s\n", msg)
		}
	}
	if failed > 0 {
		return 1
	}
	fmt.Println("all phases passed")
	return 0
}

// checkCounts verifies full row accounting: the written outputs match the
// recomputed result row for row in count, and every candidate row landed in
// exactly one of the two files.
func checkCounts(result pipeline.Result, resolved, unresolved table) *phase {
	p := &phase{name: "row accounting"}

	if got, want := len(resolved.rows), len(result.Resolved); got != want {
		p.errorf("clean dataset has %d rows, pipeline produced %d", got, want)
	}
	if got, want := len(unresolved.rows), len(result.Unresolved); got != want {
		p.errorf("audit file has %d rows, pipeline produced %d", got, want)
	}

	// Per-(state, county) unresolved counts must match the recomputation.
	want := map[string]int{}
	for _, line := range result.UnresolvedSummary() {
		want[line.Key] = line.Count
	}
	got := map[string]int{}
	for _, row := range unresolved.rows {
		got[unresolved.get(row, "state")+"/"+unresolved.get(row, "county")]++
	}
	for k, n := range want {
		if got[k] != n {
			p.errorf("unresolved key %s: audit file has %d, expected %d", k, got[k], n)
		}
	}
	for k := range got {
		if _, ok := want[k]; !ok {
			p.errorf("unresolved key %s present in audit file but not reproduced", k)
		}
	}
	return p
}

// checkJoinKeys verifies the clean dataset is usable as a join input:
// (storm, fips, year) unique, FIPS codes registry-backed unless trusted from
// the source, and storm names free of the "Hurricane " prefix.
func checkJoinKeys(reg *registry.Registry, resolved table) *phase {
	p := &phase{name: "join keys"}

	knownFIPS := map[string]struct{}{}
	for _, state := range resolved.values("state") {
		for _, county := range reg.AllCountiesOf(state) {
			if fips, ok := reg.Lookup(state, county); ok {
				knownFIPS[fips] = struct{}{}
			}
		}
	}

	seen := map[string]int{}
	for _, row := range resolved.rows {
		key := strings.Join([]string{
			resolved.get(row, "storm"),
			resolved.get(row, "fips"),
			resolved.get(row, "year"),
		}, "|")
		seen[key]++

		if strings.HasPrefix(resolved.get(row, "storm"), "Hurricane ") {
			p.errorf("storm %q still carries the Hurricane prefix", resolved.get(row, "storm"))
		}
		fips := resolved.get(row, "fips")
		if len(fips) != 5 {
			p.errorf("fips %q is not 5 digits", fips)
		}
		if resolved.get(row, "fips_source") == "registry" {
			if _, ok := knownFIPS[fips]; !ok {
				p.errorf("fips %q claims registry provenance but is not in the registry", fips)
			}
		}
	}
	for key, n := range seen {
		if n > 1 {
			p.errorf("duplicate join key %s (%d rows)", key, n)
		}
	}
	return p
}

// checkPassthrough verifies that non-geographic attributes were carried
// through unchanged: every passthrough value in the clean dataset occurs in
// the input.
func checkPassthrough(records []domain.RawAlertRecord, resolved table) *phase {
	p := &phase{name: "passthrough integrity"}

	fixed := map[string]struct{}{
		"storm": {}, "state": {}, "county": {}, "fips": {}, "fips_source": {}, "year": {},
	}
	inputValues := map[string]map[string]struct{}{}
	for _, rec := range records {
		for col, v := range rec.Extra {
			if inputValues[col] == nil {
				inputValues[col] = map[string]struct{}{}
			}
			inputValues[col][v] = struct{}{}
		}
	}

	for _, col := range resolved.header {
		if _, ok := fixed[col]; ok {
			continue
		}
		values, known := inputValues[col]
		if !known {
			p.errorf("passthrough column %q not present in input", col)
			continue
		}
		for _, row := range resolved.rows {
			if v := resolved.get(row, col); v != "" {
				if _, ok := values[v]; !ok {
					p.errorf("passthrough value %q in column %q not found in input", v, col)
					break
				}
			}
		}
	}
	return p
}

func loadRegistry(path string) (*registry.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference: %w", err)
	}
	defer f.Close()
	reg, err := registry.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}
	return reg, nil
}

func readInput(path string) ([]domain.RawAlertRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	records, skipped, err := csvfile.ReadAlerts(f, csvfile.Options{})
	if err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}
	return records, skipped, nil
}

// table is a header-indexed CSV file.
type table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

func (t table) get(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t table) values(col string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, row := range t.rows {
		v := t.get(row, col)
		if _, dup := seen[v]; dup || v == "" {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func readTable(path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return table{}, fmt.Errorf("%s is empty", path)
	}

	t := table{header: rows[0], index: map[string]int{}, rows: rows[1:]}
	for i, h := range t.header {
		t.index[h] = i
	}
	return t, nil
}
