// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hostname

import (
	"testing"
)

func TestResolve(t *testing.T) {
	r := NewResolver("hi5tech.co.uk", []string{"www", "app"})

	testCases := []struct {
		name string
		host string
		want HostKey
	}{
		{
			name: "tenant subdomain",
			host: "acme.hi5tech.co.uk",
			want: HostKey{Kind: KindSubdomain, RootDomain: "hi5tech.co.uk", Subdomain: "acme"},
		},
		{
			name: "tenant subdomain with port",
			host: "acme.hi5tech.co.uk:8443",
			want: HostKey{Kind: KindSubdomain, RootDomain: "hi5tech.co.uk", Subdomain: "acme"},
		},
		{
			name: "subdomain is lower cased",
			host: "ACME.Hi5Tech.CO.UK",
			want: HostKey{Kind: KindSubdomain, RootDomain: "hi5tech.co.uk", Subdomain: "acme"},
		},
		{
			name: "apex domain",
			host: "hi5tech.co.uk",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "reserved label www",
			host: "www.hi5tech.co.uk",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "reserved label app",
			host: "app.hi5tech.co.uk",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "nested labels",
			host: "a.b.hi5tech.co.uk",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "custom domain",
			host: "support.acme-corp.com",
			want: HostKey{Kind: KindCustomDomain, CustomDomain: "support.acme-corp.com"},
		},
		{
			name: "custom domain with port",
			host: "support.acme-corp.com:443",
			want: HostKey{Kind: KindCustomDomain, CustomDomain: "support.acme-corp.com"},
		},
		{
			name: "empty host",
			host: "",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "bare label",
			host: "localhost",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "garbage input",
			host: "not a/host\\name",
			want: HostKey{Kind: KindUnresolved},
		},
		{
			name: "trailing dot",
			host: "acme.hi5tech.co.uk.",
			want: HostKey{Kind: KindSubdomain, RootDomain: "hi5tech.co.uk", Subdomain: "acme"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(tc.host)
			if got != tc.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tc.host, got, tc.want)
			}
		})
	}
}

func TestResolveRoundTrip(t *testing.T) {
	r := NewResolver("hi5tech.co.uk", []string{"www", "app"})

	for _, sub := range []string{"acme", "a1", "blue-sky", "x"} {
		got := r.Resolve(sub + ".hi5tech.co.uk")
		if got.Kind != KindSubdomain || got.Subdomain != sub {
			t.Errorf("round trip failed for %q: %+v", sub, got)
		}
	}
}

func TestStripPortIPv6(t *testing.T) {
	r := NewResolver("hi5tech.co.uk", nil)
	got := r.Resolve("[::1]:8080")
	if got.Kind != KindUnresolved {
		t.Errorf("expected IPv6 literal to be unresolved, got %+v", got)
	}
}
