// Package prefix normalizes free-form user input into a canonical address
// block. Input is either validated directly as an IPv4/IPv6 CIDR or resolved
// through a lookup service that redirects to the canonical prefix path.
package prefix

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/routelens/routelens/log"
)

const (
	// DefaultLookupURL is the redirect-based prefix lookup endpoint. The
	// service answers any free-form address text with a 30x redirect whose
	// Location path ends with the covering canonical prefix.
	DefaultLookupURL = "https://lookup.routelens.net/prefix"

	defaultLookupTimeout = 5 * time.Second
)

// ErrInvalidInput marks address-block text that failed both direct CIDR
// validation and redirect-based resolution. Surfaced to the caller before
// any provider fetch occurs.
var ErrInvalidInput = errors.New("not a valid address block")

// Valid reports whether s is a well-formed IPv4 or IPv6 CIDR with a prefix
// length within [0,32] or [0,128] respectively.
func Valid(s string) bool {
	// ParsePrefix bounds the length by address family and rejects the
	// bare-IP form, so no extra range check is needed.
	_, err := netip.ParsePrefix(s)
	return err == nil
}

// Resolver normalizes free-form input into a canonical prefix string.
type Resolver struct {
	client    *http.Client
	lookupURL string
}

// NewResolver returns a Resolver against the given lookup endpoint, or
// DefaultLookupURL when lookupURL is empty. Redirects are captured rather
// than followed.
func NewResolver(lookupURL string) *Resolver {
	if lookupURL == "" {
		lookupURL = DefaultLookupURL
	}
	return &Resolver{
		client: &http.Client{
			Timeout: defaultLookupTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		lookupURL: lookupURL,
	}
}

// Normalize returns the canonical address block for free-form text: the text
// itself when it already is a valid CIDR, otherwise the prefix the lookup
// service redirects to. Everything downstream only ever sees the
// post-validated canonical string.
func (r *Resolver) Normalize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if Valid(text) {
		return text, nil
	}

	resolved, err := r.lookup(ctx, text)
	if err != nil {
		log.Debugf("prefix lookup for %q failed: %s", text, err)
		return "", errors.Wrapf(ErrInvalidInput, "%q", text)
	}
	return resolved, nil
}

func (r *Resolver) lookup(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.lookupURL+"?q="+url.QueryEscape(text), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create lookup request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return "", fmt.Errorf("lookup did not redirect: status %d", resp.StatusCode)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("redirect without Location header")
	}
	return prefixFromLocation(location)
}

// prefixFromLocation extracts the canonical prefix from a redirect target.
// The prefix occupies the last two path segments ("... /1.1.1.0/24"); a
// percent-encoded single-segment form is accepted as fallback.
func prefixFromLocation(location string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", errors.Wrap(err, "bad redirect location")
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if n := len(segments); n >= 2 {
		candidate := segments[n-2] + "/" + segments[n-1]
		if Valid(candidate) {
			return candidate, nil
		}
	}
	if n := len(segments); n >= 1 {
		if candidate, err := url.PathUnescape(segments[n-1]); err == nil && Valid(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no canonical prefix in redirect to %q", location)
}
