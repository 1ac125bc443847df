// Package route defines observed route records and merges per-source route
// collections into one deduplicated set.
package route

import (
	"github.com/routelens/routelens/asn"
	"github.com/routelens/routelens/aspath"
	"github.com/routelens/routelens/log"
)

// Route is one observed path to the target prefix from a single vantage
// point, as reported by a data source.
type Route struct {
	Target     string              `json:"target"`
	Path       []uint32            `json:"aspath"`
	NeighborIP string              `json:"neighborip,omitempty"`
	Origin     string              `json:"origin,omitempty"`
	ASNs       map[string]asn.Info `json:"asns,omitempty"`
}

// SourceResult is the outcome of one provider fetch: the route collection
// plus the raw count the source itself reported.
type SourceResult struct {
	Name   string
	Count  int
	Routes []Route
}

// SourceCount surfaces a per-source raw route count in the final report,
// independent of the dedup outcome.
type SourceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Set is the deduplicated union of routes from all sources. Identity is the
// comma-joined raw ASN sequence; no two routes in the set share a key.
type Set struct {
	Routes  []Route
	ASNs    map[string]asn.Info
	Sources []SourceCount
}

// Empty reports whether merging produced no routes at all, the caller's
// "no data" condition.
func (s *Set) Empty() bool {
	return len(s.Routes) == 0
}

// Merge combines per-source route collections in provider processing order.
// The first source's routes are appended unconditionally; every later
// source's routes are dropped when an identical raw ASN-sequence key is
// already present (first-seen-wins). Only accepted routes contribute their
// ASN metadata fragments to the unioned map; later fragments overwrite
// earlier ones per ASN. Nil results (failed sources) are skipped.
func Merge(results ...*SourceResult) *Set {
	set := &Set{
		ASNs: make(map[string]asn.Info),
	}

	seen := make(map[string]struct{})
	first := true
	for _, res := range results {
		if res == nil {
			continue
		}
		set.Sources = append(set.Sources, SourceCount{Name: res.Name, Count: res.Count})

		for _, r := range res.Routes {
			key := aspath.Key(r.Path)
			if _, dup := seen[key]; dup && !first {
				log.Debugf("dropping duplicate path %q from %s", key, res.Name)
				continue
			}
			seen[key] = struct{}{}
			set.Routes = append(set.Routes, r)
			for a, info := range r.ASNs {
				set.ASNs[a] = info
			}
		}
		first = false
	}

	return set
}
