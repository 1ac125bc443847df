package aspath

import (
	"strconv"
	"strings"

	"github.com/routelens/routelens/asn"
)

// Tier labels for the four aggregate buckets.
const (
	TierDirect = "DIRECT"
	TierOne    = "TIER1"
	TierTwo    = "TIER2"
	TierThree  = "TIER3"
)

// Tally counts classification keys while remembering first-insertion order,
// so ranking can stable-sort with deterministic tie-breaks.
type Tally struct {
	counts map[string]int
	order  []string
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments the count for key, registering it on first sight.
func (t *Tally) Add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Keys returns the tallied keys in first-insertion order.
func (t *Tally) Keys() []string {
	return t.order
}

// Count returns the occurrence count for key.
func (t *Tally) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.order)
}

// Buckets holds the four per-tier tallies for one query.
type Buckets struct {
	Direct *Tally
	Tier1  *Tally
	Tier2  *Tally
	Tier3  *Tally
}

func NewBuckets() *Buckets {
	return &Buckets{
		Direct: NewTally(),
		Tier1:  NewTally(),
		Tier2:  NewTally(),
		Tier3:  NewTally(),
	}
}

// Classify applies the positional tier rules to one deduplicated path and
// increments every matching bucket by one. seq is the deduplicated raw ASN
// sequence and names its parallel display-name sequence (terminated by the
// Terminus marker). A path may contribute to several buckets; DIRECT and
// TIER1 can both fire when n==2 and the hop before the terminus is not a
// curated operator for DIRECT but is one for TIER1 — the rules are applied
// independently.
func (b *Buckets) Classify(seq []uint32, names []string) {
	n := len(seq)
	if n == 0 {
		return
	}

	first := strconv.FormatUint(uint64(seq[0]), 10)
	if n <= 2 && !asn.IsOperator(first) {
		b.Direct.Add(TierDirect)
	}

	if n >= 2 {
		candidate := strconv.FormatUint(uint64(seq[n-2]), 10)
		if asn.IsOperator(candidate) {
			b.Tier1.Add(names[n-2])
		}
	}

	if n >= 3 {
		b.Tier2.Add(strings.Join(names[n-3:], hopSeparator))
	}

	if n >= 4 {
		b.Tier3.Add(strings.Join(names[n-4:], hopSeparator))
	}
}
