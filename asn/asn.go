// Package asn resolves autonomous system numbers to display names.
package asn

import "strings"

// Info is the per-ASN metadata fragment supplied by a route data provider.
// Any field other than ASN may be empty.
type Info struct {
	ASN     string `json:"asn"`
	Country string `json:"country"`
	Descr   string `json:"descr"`
	Org     string `json:"org,omitempty"`
}

// operators maps well-known transit, cloud and hosting ASNs to stable
// display names. Entries here always win over provider-supplied text so the
// same carrier never shows up under two spellings across queries.
var operators = map[string]string{
	// tier-1 transit
	"174":   "Cogent",
	"701":   "Verizon",
	"1239":  "Sprint",
	"1299":  "Arelion",
	"2914":  "NTT",
	"3257":  "GTT",
	"3320":  "Deutsche Telekom",
	"3356":  "Lumen",
	"3491":  "PCCW",
	"5511":  "Orange",
	"6453":  "Tata",
	"6461":  "Zayo",
	"6762":  "Telecom Italia Sparkle",
	"6830":  "Liberty Global",
	"7018":  "AT&T",
	"12956": "Telxius",
	// large transit / IX-adjacent carriers
	"209":   "CenturyLink",
	"1273":  "Vodafone",
	"2828":  "Verizon Business",
	"3303":  "Swisscom",
	"4134":  "China Telecom",
	"4637":  "Telstra Global",
	"6939":  "Hurricane Electric",
	"7922":  "Comcast",
	"9002":  "RETN",
	"31133": "MegaFon",
	"20764": "Rascom",
	"12389": "Rostelecom",
	"8359":  "MTS",
	"3216":  "Beeline",
	"9049":  "ER-Telecom",
	// cloud and hosting
	"8075":  "Microsoft",
	"13335": "Cloudflare",
	"14061": "DigitalOcean",
	"15169": "Google",
	"16276": "OVH",
	"16509": "Amazon",
	"19527": "Google Cloud",
	"20940": "Akamai",
	"24940": "Hetzner",
	"32934": "Meta",
	"36351": "IBM Cloud",
	"45102": "Alibaba",
	"54113": "Fastly",
	"63949": "Akamai Linode",
	"197695": "Reg.ru",
	"9123":  "TimeWeb",
	"49505": "Selectel",
}

// corporate suffixes stripped from the tail of a derived descr name
var nameSuffixes = []string{"as", "ltd", "ltd.", "inc", "inc.", "corp", "corp.", "limited", "corporation"}

// IsOperator reports whether asn belongs to the curated operator table.
// The classifier uses table membership as its tier-1 signal.
func IsOperator(asn string) bool {
	_, ok := operators[asn]
	return ok
}

// Resolve maps an ASN to a display name. Resolution order: curated operator
// table, provider org, name derived from provider descr, then the raw ASN.
// The table always wins, even when provider data is richer, to keep naming
// stable across queries.
func Resolve(asn string, meta map[string]Info) string {
	if name, ok := operators[asn]; ok {
		return name
	}
	info, ok := meta[asn]
	if !ok {
		return asn
	}
	if info.Org != "" {
		return info.Org
	}
	if info.Descr != "" {
		return nameFromDescr(info.Descr)
	}
	return asn
}

// nameFromDescr derives a short display name from free-text whois descr:
// cut at the first comma, cut at the first hyphen, then drop a trailing
// corporate suffix token.
func nameFromDescr(descr string) string {
	name := descr
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, "-"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		last := strings.ToLower(name[i+1:])
		for _, suffix := range nameSuffixes {
			if last == suffix {
				name = strings.TrimSpace(name[:i])
				break
			}
		}
	}
	return strings.TrimSpace(name)
}
