// Package provider implements the route data source adapters. Every source,
// whatever its wire shape, is unified behind the Provider interface so the
// merger and classifier stay source-agnostic.
package provider

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"

	"github.com/routelens/routelens/route"
)

// DefaultFetchTimeout bounds one source fetch. Expiry is treated as an
// equivalent-to-failure outcome for that source only.
const DefaultFetchTimeout = 10 * time.Second

// Provider produces the route collection one data source observed for a
// canonical address block.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, prefix string) (*route.SourceResult, error)
}

// fetchBody issues a GET with bounded exponential retry. Client errors are
// not retriable; server errors and transport failures are.
func fetchBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 500 * time.Millisecond
	expBackoff.MaxInterval = 3 * time.Second

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	operation := func() ([]byte, error) {
		resp, err := client.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch")
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read body")
		}

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(errors.Errorf("status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("status %d", resp.StatusCode)
		}
		return body, nil
	}

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(3))
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	return body, nil
}
