// Package pipeline sequences the county-resolution stages over a full batch
// of raw alert records: normalize, expand, resolve. Per-row failures are
// data, collected into unresolved records; one bad row never aborts a batch.
package pipeline

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/sofiavega98/HHSS-health-impacts/internal/domain"
	"github.com/sofiavega98/HHSS-health-impacts/internal/observability"
)

// Pipeline runs the normalize-expand-resolve sequence against a county index.
type Pipeline struct {
	index   domain.CountyIndex
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline with the given registry index and observability.
func New(index domain.CountyIndex, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		index:   index,
		logger:  logger,
		metrics: metrics,
	}
}

// Result is the terminal output of a batch: the clean dataset and the
// unresolved audit set. Every candidate row lands in exactly one of the two.
type Result struct {
	Resolved   []domain.ResolvedCountyRecord
	Unresolved []domain.UnresolvedRecord
}

// Run resolves the full record set. The computation is pure and total: it
// always terminates and every input row maps to zero or more output rows,
// so there is no cancellation or retry machinery.
func (p *Pipeline) Run(records []domain.RawAlertRecord) Result {
	start := time.Now()
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	candidates := make([]domain.CandidateCountyRow, 0, len(records))
	for _, rec := range records {
		p.metrics.RecordsRead.Inc()
		candidates = append(candidates, domain.NormalizeCounties(rec)...)
	}

	for _, c := range candidates {
		if domain.IsStatewidePhrase(c.CountyName) {
			if n := len(p.index.AllCountiesOf(c.State)); n > 0 {
				p.metrics.StatewideExpansions.Inc()
				p.metrics.ExpansionFanout.Observe(float64(n))
			}
		}
	}
	expanded := domain.ExpandStatewide(candidates, p.index, p.logger)
	p.metrics.CandidateRows.Add(float64(len(expanded)))

	var result Result
	for _, row := range expanded {
		resolved, unresolved := domain.Resolve(row, p.index)
		if resolved != nil {
			p.metrics.RowsResolved.Inc()
			p.metrics.FIPSSource.WithLabelValues(resolved.FIPSSource).Inc()
			result.Resolved = append(result.Resolved, *resolved)
			continue
		}
		p.metrics.RowsUnresolved.Inc()
		result.Unresolved = append(result.Unresolved, *unresolved)
	}

	p.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	p.logSummary(len(records), len(expanded), result)
	return result
}

// logSummary reports batch totals and the per-(state, county) unresolved
// counts a maintainer needs to extend the correction tables.
func (p *Pipeline) logSummary(records, candidates int, result Result) {
	p.logger.Info("batch resolved",
		"records_in", records,
		"candidate_rows", candidates,
		"resolved", len(result.Resolved),
		"unresolved", len(result.Unresolved),
	)

	for _, line := range result.UnresolvedSummary() {
		p.logger.Warn("unresolved county", "key", line.Key, "count", line.Count, "reason", line.Reason)
	}
}

// SummaryLine is one unresolved (state, county) group.
type SummaryLine struct {
	Key    string // "STATE/CountyName"
	Reason string
	Count  int
}

// UnresolvedSummary groups the unresolved records by (state, cleaned county
// name), sorted by key for stable output.
func (r Result) UnresolvedSummary() []SummaryLine {
	type group struct {
		reason string
		count  int
	}
	groups := map[string]*group{}
	for _, u := range r.Unresolved {
		k := fmt.Sprintf("%s/%s", u.State, u.CountyName)
		if g, ok := groups[k]; ok {
			g.count++
			continue
		}
		groups[k] = &group{reason: u.Reason, count: 1}
	}

	lines := make([]SummaryLine, 0, len(groups))
	for k, g := range groups {
		lines = append(lines, SummaryLine{Key: k, Reason: g.reason, Count: g.count})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Key < lines[j].Key })
	return lines
}
