package asn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		asn  string
		meta map[string]Info
		want string
	}{
		{
			name: "curated table wins over provider org",
			asn:  "3356",
			meta: map[string]Info{
				"3356": {ASN: "3356", Org: "Level 3 Parent, LLC", Descr: "LEVEL3"},
			},
			want: "Lumen",
		},
		{
			name: "curated table without metadata",
			asn:  "7018",
			want: "AT&T",
		},
		{
			name: "org preferred over descr",
			asn:  "64496",
			meta: map[string]Info{
				"64496": {ASN: "64496", Org: "Example Networks", Descr: "EXAMPLE-AS"},
			},
			want: "Example Networks",
		},
		{
			name: "descr cut at first comma",
			asn:  "64497",
			meta: map[string]Info{
				"64497": {ASN: "64497", Descr: "Acme Networks, Springfield, US"},
			},
			want: "Acme Networks",
		},
		{
			name: "descr cut at first hyphen",
			asn:  "64498",
			meta: map[string]Info{
				"64498": {ASN: "64498", Descr: "ACME-AS Global"},
			},
			want: "ACME",
		},
		{
			name: "trailing corporate suffix stripped",
			asn:  "64499",
			meta: map[string]Info{
				"64499": {ASN: "64499", Descr: "Acme Networks Ltd"},
			},
			want: "Acme Networks",
		},
		{
			name: "suffix match is case insensitive",
			asn:  "64500",
			meta: map[string]Info{
				"64500": {ASN: "64500", Descr: "Acme Networks CORP."},
			},
			want: "Acme Networks",
		},
		{
			name: "suffix only stripped as final token",
			asn:  "64501",
			meta: map[string]Info{
				"64501": {ASN: "64501", Descr: "Ltd Networks"},
			},
			want: "Ltd Networks",
		},
		{
			name: "comma before hyphen",
			asn:  "64502",
			meta: map[string]Info{
				"64502": {ASN: "64502", Descr: "Acme Networks, ACME-WEST"},
			},
			want: "Acme Networks",
		},
		{
			name: "no metadata falls back to asn",
			asn:  "65000",
			want: "65000",
		},
		{
			name: "empty org and descr falls back to asn",
			asn:  "65001",
			meta: map[string]Info{
				"65001": {ASN: "65001", Country: "US"},
			},
			want: "65001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.asn, tt.meta))
		})
	}
}

func TestIsOperator(t *testing.T) {
	assert.True(t, IsOperator("3356"))
	assert.True(t, IsOperator("13335"))
	assert.False(t, IsOperator("65000"))
	assert.False(t, IsOperator(""))
}
