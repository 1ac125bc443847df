package provider

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/routelens/routelens/asn"
	"github.com/routelens/routelens/cache"
	"github.com/routelens/routelens/route"
)

// DefaultGlassURL is the HTML looking-glass endpoint (source B).
const DefaultGlassURL = "https://glass.routelens.net/prefix"

// pathMarker is the class of the element delimiting one observed path in
// the looking-glass document.
const pathMarker = "path"

// Glass fetches routes from the web looking glass, which only speaks HTML.
// Each path in the document is delimited by a marker element and rendered
// as a run of AS links; the scraper extracts the (ASN, description) pairs
// in document order and assembles them into the same Route shape source A
// produces.
type Glass struct {
	client  *http.Client
	baseURL string
}

// NewGlass returns a Glass provider against baseURL, or DefaultGlassURL
// when empty.
func NewGlass(baseURL string) *Glass {
	if baseURL == "" {
		baseURL = DefaultGlassURL
	}
	return &Glass{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		baseURL: baseURL,
	}
}

func (g *Glass) Name() string {
	return "glass"
}

// Fetch returns the routes source B observed for prefix.
func (g *Glass) Fetch(ctx context.Context, prefix string) (*route.SourceResult, error) {
	return cache.Get("glass:"+prefix, func() (*route.SourceResult, error) {
		body, err := fetchBody(ctx, g.client, g.baseURL+"?q="+url.QueryEscape(prefix))
		if err != nil {
			return nil, err
		}
		return g.scrape(body, prefix), nil
	})
}

// scrape walks the HTML token stream. A marker element starts a new path;
// every AS anchor until the next marker contributes one hop plus a metadata
// fragment entry derived from the anchor title.
func (g *Glass) scrape(body []byte, prefix string) *route.SourceResult {
	result := &route.SourceResult{Name: g.Name()}

	var current []uint32
	var meta map[string]asn.Info
	collecting := false

	flush := func() {
		if !collecting {
			return
		}
		result.Count++
		result.Routes = append(result.Routes, route.Route{
			Target: prefix,
			Path:   current,
			ASNs:   meta,
		})
		current = nil
		meta = nil
	}

	z := html.NewTokenizer(bytes.NewReader(body))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			flush()
			return result
		}
		if tt != html.StartTagToken {
			continue
		}

		t := z.Token()
		if hasClass(t, pathMarker) {
			flush()
			collecting = true
			meta = make(map[string]asn.Info)
			continue
		}
		if !collecting || t.Data != "a" {
			continue
		}

		number, descr, ok := asLink(t)
		if !ok {
			continue
		}
		current = append(current, number)
		key := strconv.FormatUint(uint64(number), 10)
		meta[key] = asn.Info{ASN: key, Descr: descr}
	}
}

func hasClass(t html.Token, class string) bool {
	for _, a := range t.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// asLink extracts the AS number and description from an anchor of the form
// <a href="/AS174" title="Cogent Communications">.
func asLink(t html.Token) (uint32, string, bool) {
	var href, title string
	for _, a := range t.Attr {
		switch a.Key {
		case "href":
			href = a.Val
		case "title":
			title = a.Val
		}
	}

	segment := href
	if i := strings.LastIndexByte(segment, '/'); i >= 0 {
		segment = segment[i+1:]
	}
	if !strings.HasPrefix(segment, "AS") {
		return 0, "", false
	}
	number, err := strconv.ParseUint(segment[2:], 10, 32)
	if err != nil {
		return 0, "", false
	}
	return uint32(number), title, true
}
