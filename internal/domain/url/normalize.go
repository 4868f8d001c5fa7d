// Package url provides hostname utilities for per-site settings.
package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidSitePattern is returned for patterns that are neither a hostname nor "*.suffix".
var ErrInvalidSitePattern = errors.New("invalid site pattern")

// wildcardPrefix marks a pattern that matches any subdomain of its suffix.
const wildcardPrefix = "*."

// NormalizeHostname lowercases a hostname and strips a trailing dot and port.
func NormalizeHostname(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, ok := strings.Cut(host, ":"); ok && !strings.Contains(host, "]") {
		host = h
	}
	return strings.TrimSuffix(host, ".")
}

// ExtractHostname returns the normalized hostname of a URL or bare host.
// Unlike browser display code it keeps "www." since site rules may target it.
func ExtractHostname(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		return NormalizeHostname(strings.SplitN(raw, "/", 2)[0])
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return NormalizeHostname(parsed.Hostname())
}

// WildcardCandidates returns the wildcard patterns that may match host,
// most specific first: "a.b.c" yields "*.b.c", "*.c".
func WildcardCandidates(host string) []string {
	host = NormalizeHostname(host)
	if host == "" {
		return nil
	}
	labels := strings.Split(host, ".")
	candidates := make([]string, 0, len(labels)-1)
	for i := 1; i < len(labels); i++ {
		candidates = append(candidates, wildcardPrefix+strings.Join(labels[i:], "."))
	}
	return candidates
}

// IsWildcard reports whether pattern is a "*.suffix" rule.
func IsWildcard(pattern string) bool {
	return strings.HasPrefix(pattern, wildcardPrefix)
}

// NormalizeSitePattern validates and normalizes a site rule key.
func NormalizeSitePattern(pattern string) (string, error) {
	p := NormalizeHostname(pattern)
	host := strings.TrimPrefix(p, wildcardPrefix)
	if host == "" || strings.ContainsAny(host, "*/ ") || strings.HasPrefix(host, ".") || strings.Contains(host, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSitePattern, pattern)
	}
	return p, nil
}
