package aspath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routelens/routelens/asn"
)

func TestDedup(t *testing.T) {
	tests := []struct {
		name string
		path []uint32
		want []uint32
	}{
		{
			name: "adjacent run collapsed",
			path: []uint32{100, 100, 7018, 65000},
			want: []uint32{100, 7018, 65000},
		},
		{
			name: "prepend padding collapsed",
			path: []uint32{174, 174, 174, 174, 65000},
			want: []uint32{174, 65000},
		},
		{
			name: "non-adjacent repeat kept",
			path: []uint32{100, 200, 100},
			want: []uint32{100, 200, 100},
		},
		{
			name: "no duplicates untouched",
			path: []uint32{1, 2, 3},
			want: []uint32{1, 2, 3},
		},
		{
			name: "single hop",
			path: []uint32{65000},
			want: []uint32{65000},
		},
		{
			name: "empty path",
			path: nil,
			want: []uint32{},
		},
		{
			name: "multiple runs",
			path: []uint32{1, 1, 2, 2, 2, 3, 1, 1},
			want: []uint32{1, 2, 3, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedup(tt.path))
		})
	}
}

func TestDedupDoesNotModifyInput(t *testing.T) {
	path := []uint32{5, 5, 6}
	Dedup(path)
	assert.Equal(t, []uint32{5, 5, 6}, path)
}

func TestNames(t *testing.T) {
	meta := map[string]asn.Info{
		"65000": {ASN: "65000", Org: "Origin Networks"},
		"100":   {ASN: "100", Descr: "SOMEWHERE-AS"},
	}

	names := Names([]uint32{100, 7018, 65000}, meta)
	assert.Equal(t, []string{"SOMEWHERE", "AT&T", "END"}, names)

	// hops without metadata fall back to the raw ASN
	names = Names([]uint32{100, 7018, 65000}, nil)
	assert.Equal(t, []string{"100", "AT&T", "END"}, names)
}

func TestNamesTerminusOverridesResolvedName(t *testing.T) {
	// the last hop always renders as END even when it would resolve
	names := Names([]uint32{65000, 3356}, nil)
	assert.Equal(t, []string{"65000", "END"}, names)
}

func TestNamesEmpty(t *testing.T) {
	assert.Empty(t, Names(nil, nil))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "100,100,7018,65000", Key([]uint32{100, 100, 7018, 65000}))
	assert.Equal(t, "65000", Key([]uint32{65000}))
	assert.Equal(t, "", Key(nil))
}
