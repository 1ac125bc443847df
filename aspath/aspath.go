// Package aspath normalizes observed BGP AS-paths and classifies them into
// upstream tiers.
package aspath

import (
	"strconv"
	"strings"

	"github.com/routelens/routelens/asn"
)

// Terminus is the literal marker substituted for the display name of the
// last hop of every normalized path, denoting the originating network.
const Terminus = "END"

// hopSeparator joins display names into TIER2/TIER3 bucket keys.
const hopSeparator = " -> "

// Dedup collapses runs of consecutive identical ASNs in a raw path: element
// i is dropped when it equals element i+1. A hop that reappears
// non-adjacently is kept. The input slice is not modified.
func Dedup(path []uint32) []uint32 {
	deduped := make([]uint32, 0, len(path))
	for i, hop := range path {
		if i+1 < len(path) && path[i+1] == hop {
			continue
		}
		deduped = append(deduped, hop)
	}
	return deduped
}

// Names resolves every hop of a deduplicated path to a display name and
// overwrites the last name with the Terminus marker, regardless of what it
// would have resolved to.
func Names(path []uint32, meta map[string]asn.Info) []string {
	names := make([]string, len(path))
	for i, hop := range path {
		names[i] = asn.Resolve(strconv.FormatUint(uint64(hop), 10), meta)
	}
	if len(names) > 0 {
		names[len(names)-1] = Terminus
	}
	return names
}

// Key renders a raw, undeduplicated path as its comma-joined identity used
// for route dedup across sources. Exact sequence equality, not normalized.
func Key(path []uint32) string {
	hops := make([]string, len(path))
	for i, hop := range path {
		hops[i] = strconv.FormatUint(uint64(hop), 10)
	}
	return strings.Join(hops, ",")
}
