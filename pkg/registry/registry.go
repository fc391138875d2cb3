// Package registry holds the immutable feed catalog used by aggregation runs.
// Entries are validated and normalized once, when the registry is built; nothing
// downstream patches or mutates them.
package registry

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/idna"

	"github.com/umputun/headlines/pkg/config"
	"github.com/umputun/headlines/pkg/domain"
)

// Registry is an ordered, read-only sequence of feed sources
type Registry struct {
	sources []domain.Source
}

// New validates the catalog and builds a registry preserving catalog order.
// All malformed and duplicate entries are reported together.
func New(feeds []config.Feed) (*Registry, error) {
	sources := make([]domain.Source, 0, len(feeds))
	seen := make(map[string]int, len(feeds))
	var errs []error

	for i, f := range feeds {
		endpoint, err := normalizeURL(f.URL)
		if err != nil {
			errs = append(errs, fmt.Errorf("feed #%d %q: %w", i+1, f.Name, err))
			continue
		}
		if prev, ok := seen[endpoint]; ok {
			errs = append(errs, fmt.Errorf("feed #%d %q: duplicate endpoint %s, already registered as #%d", i+1, f.Name, endpoint, prev))
			continue
		}
		seen[endpoint] = i + 1

		src := domain.Source{
			Name:     strings.TrimSpace(f.Name),
			URL:      endpoint,
			Category: strings.TrimSpace(f.Category),
		}
		if src.Name == "" {
			src.Name = endpoint
		}
		if src.Category == "" {
			src.Category = domain.DefaultCategory
		}
		sources = append(sources, src)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid feed catalog: %w", errors.Join(errs...))
	}
	if len(sources) == 0 {
		return nil, errors.New("invalid feed catalog: no feeds")
	}
	return &Registry{sources: sources}, nil
}

// Sources returns a copy of all sources in registry order
func (r *Registry) Sources() []domain.Source {
	res := make([]domain.Source, len(r.sources))
	copy(res, r.sources)
	return res
}

// Len returns the number of sources
func (r *Registry) Len() int {
	return len(r.sources)
}

// Categories returns sorted distinct categories
func (r *Registry) Categories() []string {
	set := map[string]struct{}{}
	for _, s := range r.sources {
		set[s.Category] = struct{}{}
	}
	res := make([]string, 0, len(set))
	for c := range set {
		res = append(res, c)
	}
	sort.Strings(res)
	return res
}

// normalizeURL checks the endpoint is an absolute http(s) URL and returns it
// with a lower-case, IDNA-encoded host
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty endpoint")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("malformed endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("malformed endpoint %q: scheme must be http or https", raw)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("malformed endpoint %q: missing host", raw)
	}

	// ip literals skip idna and get their canonical form
	host := u.Hostname()
	ip := net.ParseIP(host)
	if ip != nil {
		host = ip.String()
	} else if host, err = idna.Lookup.ToASCII(host); err != nil {
		return "", fmt.Errorf("malformed endpoint host %q: %w", u.Hostname(), err)
	}
	switch {
	case u.Port() != "":
		u.Host = net.JoinHostPort(host, u.Port())
	case ip != nil && ip.To4() == nil:
		u.Host = "[" + host + "]"
	default:
		u.Host = host
	}
	return u.String(), nil
}
