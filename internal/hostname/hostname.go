// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package hostname parses the host header of an inbound request into a
// tenant host key. It performs no I/O and never trusts the host to
// identify anything other than a tenant candidate.
package hostname

import (
	"strings"
)

type Kind int

const (
	// KindUnresolved means no tenant context: the apex domain itself,
	// a reserved label, or input that does not parse.
	KindUnresolved Kind = iota
	// KindSubdomain is a tenant subdomain under the platform root domain.
	KindSubdomain
	// KindCustomDomain is a full host that may match a tenant's custom domain.
	KindCustomDomain
)

// HostKey is the result of resolving a raw host header.
type HostKey struct {
	Kind         Kind
	RootDomain   string
	Subdomain    string
	CustomDomain string
}

func unresolved() HostKey {
	return HostKey{Kind: KindUnresolved}
}

// Resolver parses host headers against a fixed root domain. Reserved
// labels (www, app, ...) never resolve to a tenant.
type Resolver struct {
	rootDomain string
	reserved   map[string]struct{}
}

func NewResolver(rootDomain string, reservedLabels []string) *Resolver {
	reserved := make(map[string]struct{}, len(reservedLabels))
	for _, l := range reservedLabels {
		reserved[strings.ToLower(l)] = struct{}{}
	}

	return &Resolver{
		rootDomain: strings.ToLower(strings.TrimSuffix(rootDomain, ".")),
		reserved:   reserved,
	}
}

// Resolve is total: malformed input yields an unresolved key, never an error.
func (r *Resolver) Resolve(hostHeader string) HostKey {
	host := strings.ToLower(strings.TrimSpace(hostHeader))
	if host == "" {
		return unresolved()
	}

	host = stripPort(host)
	host = strings.TrimSuffix(host, ".")
	if host == "" || strings.ContainsAny(host, "/\\ ") {
		return unresolved()
	}

	if host == r.rootDomain {
		return unresolved()
	}

	if suffix := "." + r.rootDomain; strings.HasSuffix(host, suffix) {
		label := strings.TrimSuffix(host, suffix)
		if label == "" || strings.Contains(label, ".") {
			// Multi-label hosts under the root domain are unresolved
			// rather than custom-domain candidates: no custom domain
			// lives under our own apex, and treating a.b.<root> as one
			// would let directory rows shadow the subdomain namespace.
			return unresolved()
		}
		if _, ok := r.reserved[label]; ok {
			return unresolved()
		}
		return HostKey{
			Kind:       KindSubdomain,
			RootDomain: r.rootDomain,
			Subdomain:  label,
		}
	}

	if !strings.Contains(host, ".") {
		return unresolved()
	}

	return HostKey{
		Kind:         KindCustomDomain,
		CustomDomain: host,
	}
}

// stripPort removes a trailing :port, tolerating IPv6 literals.
func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end != -1 {
			return host[1:end]
		}
		return host
	}

	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i+1:], ":") {
		return host[:i]
	}
	return host
}
