package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/routelens/routelens/asn"
	"github.com/routelens/routelens/cache"
	"github.com/routelens/routelens/log"
	"github.com/routelens/routelens/route"
)

// DefaultRISURL is the structured looking-glass endpoint (source A).
const DefaultRISURL = "https://ris.routelens.net/lookup"

// RIS fetches routes from the JSON looking-glass API. The endpoint answers
// one prefix with {"count": N, "response": [route...]}.
type RIS struct {
	client  *http.Client
	baseURL string
}

// NewRIS returns a RIS provider against baseURL, or DefaultRISURL when
// empty.
func NewRIS(baseURL string) *RIS {
	if baseURL == "" {
		baseURL = DefaultRISURL
	}
	return &RIS{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		baseURL: baseURL,
	}
}

func (r *RIS) Name() string {
	return "ris"
}

// risResponse is the source A wire shape.
type risResponse struct {
	Count    int        `json:"count"`
	Response []risRoute `json:"response"`
}

type risRoute struct {
	Target     string              `json:"target"`
	ASPath     json.RawMessage     `json:"aspath"`
	NeighborIP string              `json:"neighborip"`
	Origin     string              `json:"origin"`
	ASNs       map[string]asn.Info `json:"asns"`
}

// Fetch returns the routes source A observed for prefix. Responses are
// cached per prefix so back-to-back queries don't hammer the upstream.
func (r *RIS) Fetch(ctx context.Context, prefix string) (*route.SourceResult, error) {
	return cache.Get("ris:"+prefix, func() (*route.SourceResult, error) {
		return r.fetch(ctx, prefix)
	})
}

func (r *RIS) fetch(ctx context.Context, prefix string) (*route.SourceResult, error) {
	body, err := fetchBody(ctx, r.client, r.baseURL+"?prefix="+url.QueryEscape(prefix))
	if err != nil {
		return nil, err
	}

	var resp risResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode ris response")
	}

	result := &route.SourceResult{
		Name:  r.Name(),
		Count: resp.Count,
	}
	for _, rr := range resp.Response {
		path, err := parseASPath(rr.ASPath)
		if err != nil {
			log.Debugf("skipping unparseable path for %s: %s", prefix, err)
			continue
		}
		result.Routes = append(result.Routes, route.Route{
			Target:     rr.Target,
			Path:       path,
			NeighborIP: rr.NeighborIP,
			Origin:     rr.Origin,
			ASNs:       rr.ASNs,
		})
	}
	return result, nil
}

// parseASPath flattens an AS path that may mix plain numbers, quoted
// numbers and nested arrays (AS_SET):
// [174, 3356, 65001] or [[174], "3356", [65001, 65002]]
func parseASPath(data json.RawMessage) ([]uint32, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var simple []uint32
	if err := json.Unmarshal(data, &simple); err == nil {
		return simple, nil
	}

	var mixed []json.RawMessage
	if err := json.Unmarshal(data, &mixed); err != nil {
		return nil, errors.Wrap(err, "cannot parse aspath")
	}

	var path []uint32
	for _, elem := range mixed {
		var num uint32
		if err := json.Unmarshal(elem, &num); err == nil {
			path = append(path, num)
			continue
		}

		var nums []uint32
		if err := json.Unmarshal(elem, &nums); err == nil {
			path = append(path, nums...)
			continue
		}

		var str string
		if err := json.Unmarshal(elem, &str); err == nil {
			val, err := strconv.ParseUint(str, 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "bad asn %q", str)
			}
			path = append(path, uint32(val))
		}
	}
	return path, nil
}
