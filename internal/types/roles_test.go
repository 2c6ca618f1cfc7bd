// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
)

func TestRoleAtLeast(t *testing.T) {
	testCases := []struct {
		name string
		role Role
		min  Role
		want bool
	}{
		{"owner satisfies admin", RoleOwner, RoleAdmin, true},
		{"owner satisfies owner", RoleOwner, RoleOwner, true},
		{"admin satisfies admin", RoleAdmin, RoleAdmin, true},
		{"admin does not satisfy owner", RoleAdmin, RoleOwner, false},
		{"user does not satisfy admin", RoleUser, RoleAdmin, false},
		{"viewer does not satisfy owner", RoleViewer, RoleOwner, false},
		{"agent does not satisfy admin", RoleAgent, RoleAdmin, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.role.AtLeast(tc.min); got != tc.want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", tc.role, tc.min, got, tc.want)
			}
		})
	}
}

func TestRolePrivileged(t *testing.T) {
	privileged := []Role{RoleOwner, RoleAdmin}
	for _, r := range privileged {
		if !r.Privileged() {
			t.Errorf("expected %s to be privileged", r)
		}
	}

	for _, r := range []Role{RoleUser, RoleViewer, RoleAgent} {
		if r.Privileged() {
			t.Errorf("expected %s to not be privileged", r)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("owner"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestParseModule(t *testing.T) {
	for _, m := range []string{"itsm", "control", "selfservice"} {
		if _, err := ParseModule(m); err != nil {
			t.Errorf("unexpected error for %q: %v", m, err)
		}
	}
	if _, err := ParseModule("billing"); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestScopeSetUnion(t *testing.T) {
	a := NewScopeSet("incidents.view", "incidents.assign")
	b := NewScopeSet("incidents.view", "incidents.close")

	u := a.Union(b)
	if len(u) != 3 {
		t.Fatalf("expected 3 scopes, got %d", len(u))
	}
	for _, scope := range []string{"incidents.view", "incidents.assign", "incidents.close"} {
		if !u.Has(scope) {
			t.Errorf("expected union to contain %s", scope)
		}
	}
}

func TestScopeSetContainsAll(t *testing.T) {
	s := NewScopeSet("incidents.view", "incidents.assign")

	if !s.ContainsAll(NewScopeSet("incidents.view")) {
		t.Error("expected subset to be contained")
	}
	if s.ContainsAll(NewScopeSet("incidents.view", "incidents.close")) {
		t.Error("expected missing scope to fail containment")
	}
	if !s.ContainsAll(NewScopeSet()) {
		t.Error("empty requirement should always be contained")
	}
}
