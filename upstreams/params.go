package upstreams

import (
	"time"

	"github.com/routelens/routelens/provider"
)

// DefaultSourceTimeout bounds each source fetch when Params.Timeout is
// unset.
const DefaultSourceTimeout = provider.DefaultFetchTimeout

// Params configures one query.
type Params struct {
	// Target is the user-supplied address block text, free-form. It is
	// normalized to a canonical prefix before any fetch.
	Target string
	// Timeout applies per source fetch, not to the whole query.
	Timeout time.Duration
}
