package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelens/routelens/aspath"
	"github.com/routelens/routelens/route"
)

func TestRank(t *testing.T) {
	ta := aspath.NewTally()
	for i := 0; i < 3; i++ {
		ta.Add("Lumen")
	}
	ta.Add("Cogent")
	for i := 0; i < 5; i++ {
		ta.Add("AT&T")
	}

	entries := Rank(ta, aspath.TierOne, 10)

	require.Len(t, entries, 3)
	assert.Equal(t, PathInfo{Path: "AT&T", Count: 5, Percentage: 50, Tier: "TIER1"}, entries[0])
	assert.Equal(t, PathInfo{Path: "Lumen", Count: 3, Percentage: 30, Tier: "TIER1"}, entries[1])
	assert.Equal(t, PathInfo{Path: "Cogent", Count: 1, Percentage: 10, Tier: "TIER1"}, entries[2])
}

func TestRankTiesKeepInsertionOrder(t *testing.T) {
	ta := aspath.NewTally()
	ta.Add("second") // inserted first
	ta.Add("first")
	ta.Add("second")
	ta.Add("first")

	entries := Rank(ta, aspath.TierTwo, 4)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Path)
	assert.Equal(t, "first", entries[1].Path)
}

func TestRankCapsAtFive(t *testing.T) {
	ta := aspath.NewTally()
	keys := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, k := range keys {
		for j := 0; j <= i; j++ {
			ta.Add(k)
		}
	}

	entries := Rank(ta, aspath.TierThree, 28)
	require.Len(t, entries, 5)
	assert.Equal(t, "g", entries[0].Path)
	assert.Equal(t, "c", entries[4].Path)
}

func TestRankZeroTotalPaths(t *testing.T) {
	ta := aspath.NewTally()
	ta.Add("DIRECT")

	entries := Rank(ta, aspath.TierDirect, 0)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Percentage)
}

func TestNewConcatenatesTiersInOrder(t *testing.T) {
	buckets := aspath.NewBuckets()
	buckets.Direct.Add("DIRECT")
	buckets.Tier1.Add("Lumen")
	buckets.Tier2.Add("a -> Lumen -> END")
	buckets.Tier3.Add("b -> a -> Lumen -> END")

	set := &route.Set{
		Routes:  make([]route.Route, 4),
		Sources: []route.SourceCount{{Name: "ris", Count: 4}},
	}

	rep := New("1.1.1.0/24", set, buckets)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "1.1.1.0/24", rep.Target)
	assert.Equal(t, 4, rep.TotalPaths)
	require.Len(t, rep.Entries, 4)
	assert.Equal(t, aspath.TierDirect, rep.Entries[0].Tier)
	assert.Equal(t, aspath.TierOne, rep.Entries[1].Tier)
	assert.Equal(t, aspath.TierTwo, rep.Entries[2].Tier)
	assert.Equal(t, aspath.TierThree, rep.Entries[3].Tier)
}

func TestNewTruncatesCombinedListToFifteen(t *testing.T) {
	// 5 entries per tier would allow 20; the combined cap drops the whole
	// TIER3 block.
	buckets := aspath.NewBuckets()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		buckets.Direct.Add(k)
		buckets.Tier1.Add(k)
		buckets.Tier2.Add(k)
		buckets.Tier3.Add(k)
	}

	rep := New("1.1.1.0/24", &route.Set{Routes: make([]route.Route, 5)}, buckets)

	require.Len(t, rep.Entries, 15)
	for _, e := range rep.Entries {
		assert.NotEqual(t, aspath.TierThree, e.Tier)
	}
}

func TestRender(t *testing.T) {
	rep := &Report{
		Target:     "1.1.1.0/24",
		TotalPaths: 2,
		Sources:    []route.SourceCount{{Name: "ris", Count: 2}, {Name: "glass", Count: 1}},
		Entries: []PathInfo{
			{Path: "Lumen", Count: 2, Percentage: 100, Tier: "TIER1"},
			{Path: "100 -> Lumen -> END", Count: 1, Percentage: 50, Tier: "TIER2"},
		},
	}

	text := rep.Render()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Upstreams for 1.1.1.0/24", lines[0])
	assert.Equal(t, "Paths: 2 unique (ris: 2, glass: 1)", lines[1])
	assert.Empty(t, lines[2])
	assert.Contains(t, lines[3], "TIER1")
	assert.Contains(t, lines[3], "100.0%")
	assert.Contains(t, lines[3], "Lumen")
	assert.Contains(t, lines[4], "TIER2")
	assert.Contains(t, lines[4], "100 -> Lumen -> END")
}

func TestRenderNoData(t *testing.T) {
	rep := &Report{
		Target:  "203.0.113.0/24",
		Sources: []route.SourceCount{{Name: "ris", Count: 0}, {Name: "glass", Count: 0}},
	}

	text := rep.Render()
	assert.Equal(t, "No routes found for 203.0.113.0/24 (ris: 0, glass: 0)\n", text)
}

func TestRenderIsDeterministic(t *testing.T) {
	rep := &Report{
		Target:     "1.1.1.0/24",
		TotalPaths: 1,
		Sources:    []route.SourceCount{{Name: "ris", Count: 1}},
		Entries:    []PathInfo{{Path: "DIRECT", Count: 1, Percentage: 100, Tier: "DIRECT"}},
	}
	assert.Equal(t, rep.Render(), rep.Render())
}
