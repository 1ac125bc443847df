// Package report ranks classified path tallies and renders the final
// summary.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routelens/routelens/aspath"
	"github.com/routelens/routelens/route"
)

const (
	// maxPerTier caps the ranked entries kept for each tier.
	maxPerTier = 5
	// maxEntries caps the combined list for display. Later tiers can be
	// dropped entirely by this second truncation.
	maxEntries = 15
)

// PathInfo is one ranked entry of the final report.
type PathInfo struct {
	Path       string  `json:"path"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Tier       string  `json:"tier"`
}

// Report is the structured result for one query.
type Report struct {
	ID         string              `json:"id"`
	Target     string              `json:"target"`
	TotalPaths int                 `json:"total_paths"`
	Sources    []route.SourceCount `json:"sources"`
	Entries    []PathInfo          `json:"entries"`
}

// Rank converts one bucket tally into ranked entries: percentage of total
// paths, stable-sorted descending so ties keep insertion order, truncated to
// maxPerTier. A zero totalPaths yields 0% entries rather than dividing by
// zero.
func Rank(t *aspath.Tally, tier string, totalPaths int) []PathInfo {
	entries := make([]PathInfo, 0, t.Len())
	for _, key := range t.Keys() {
		count := t.Count(key)
		var pct float64
		if totalPaths > 0 {
			pct = 100 * float64(count) / float64(totalPaths)
		}
		entries = append(entries, PathInfo{
			Path:       key,
			Count:      count,
			Percentage: pct,
			Tier:       tier,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percentage > entries[j].Percentage
	})

	if len(entries) > maxPerTier {
		entries = entries[:maxPerTier]
	}
	return entries
}

// New builds the report for one query from the merged route set and its
// classified buckets. Tier order is fixed: DIRECT, TIER1, TIER2, TIER3.
func New(target string, set *route.Set, buckets *aspath.Buckets) *Report {
	totalPaths := len(set.Routes)

	var entries []PathInfo
	entries = append(entries, Rank(buckets.Direct, aspath.TierDirect, totalPaths)...)
	entries = append(entries, Rank(buckets.Tier1, aspath.TierOne, totalPaths)...)
	entries = append(entries, Rank(buckets.Tier2, aspath.TierTwo, totalPaths)...)
	entries = append(entries, Rank(buckets.Tier3, aspath.TierThree, totalPaths)...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	return &Report{
		ID:         newBase64UUID(),
		Target:     target,
		TotalPaths: totalPaths,
		Sources:    set.Sources,
		Entries:    entries,
	}
}

// Render produces the deterministic line-oriented text block handed to the
// transport layer. The consumer owns length-limit handling, so no size
// ceiling is assumed here.
func (r *Report) Render() string {
	var b strings.Builder

	if r.TotalPaths == 0 {
		fmt.Fprintf(&b, "No routes found for %s", r.Target)
		if len(r.Sources) > 0 {
			b.WriteString(" (")
			b.WriteString(renderSources(r.Sources))
			b.WriteString(")")
		}
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Upstreams for %s\n", r.Target)
	fmt.Fprintf(&b, "Paths: %d unique (%s)\n\n", r.TotalPaths, renderSources(r.Sources))
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%-7s %5.1f%%  %3d  %s\n", e.Tier, e.Percentage, e.Count, e.Path)
	}
	return b.String()
}

func renderSources(sources []route.SourceCount) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = fmt.Sprintf("%s: %d", s.Name, s.Count)
	}
	return strings.Join(parts, ", ")
}
