// Package upstreams answers "through which networks does traffic to this
// address block travel": it fans out to the route data sources, merges
// their observations and produces a ranked tier summary.
package upstreams

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/routelens/routelens/aspath"
	"github.com/routelens/routelens/log"
	"github.com/routelens/routelens/prefix"
	"github.com/routelens/routelens/provider"
	"github.com/routelens/routelens/report"
	"github.com/routelens/routelens/route"
)

type Upstreams struct {
	providers []provider.Provider
	resolver  *prefix.Resolver
}

// New returns an analyzer over the default source set, in merge precedence
// order: ris first, then the web looking glass.
func New() *Upstreams {
	return &Upstreams{
		providers: []provider.Provider{
			provider.NewRIS(""),
			provider.NewGlass(""),
		},
		resolver: prefix.NewResolver(""),
	}
}

// Analyze runs one query end to end: normalize the target, fetch from every
// source concurrently, merge, classify and rank. One responding source is
// enough to proceed; an error comes back only for invalid input or when no
// source produced anything usable.
func (u *Upstreams) Analyze(ctx context.Context, params Params) (*report.Report, error) {
	canonical, err := u.resolver.Normalize(ctx, params.Target)
	if err != nil {
		return nil, err
	}

	outcomes := u.fetchAll(ctx, canonical, params)

	results := make([]*route.SourceResult, 0, len(outcomes))
	failed := 0
	for i, out := range outcomes {
		if out.err != nil {
			log.Warnf("source %s unavailable for %s: %s", u.providers[i].Name(), canonical, out.err)
			failed++
			continue
		}
		results = append(results, out.result)
	}
	if failed == len(outcomes) {
		return nil, &AnalysisError{
			Code:    ErrCodeNoData,
			Message: "no data available for " + canonical + ": all sources failed",
		}
	}

	set := route.Merge(results...)
	buckets := aspath.NewBuckets()
	for _, r := range set.Routes {
		// routes without a usable path are skipped, not fatal
		if len(r.Path) == 0 {
			continue
		}
		deduped := aspath.Dedup(r.Path)
		names := aspath.Names(deduped, set.ASNs)
		buckets.Classify(deduped, names)
	}

	return report.New(canonical, set, buckets), nil
}

type sourceOutcome struct {
	result *route.SourceResult
	err    error
}

// fetchAll runs one fetch per source in parallel and waits for all of them
// to settle. A failing source never cancels the others; each task records
// its own outcome.
func (u *Upstreams) fetchAll(ctx context.Context, canonical string, params Params) []sourceOutcome {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = DefaultSourceTimeout
	}

	outcomes := make([]sourceOutcome, len(u.providers))
	var g errgroup.Group
	for i, p := range u.providers {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			res, err := p.Fetch(fetchCtx, canonical)
			outcomes[i] = sourceOutcome{result: res, err: err}
			return nil
		})
	}
	// tasks never return errors, outcomes carry per-source failures
	_ = g.Wait()
	return outcomes
}
