// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"testing"

	"github.com/hi5tech/access-service/internal/types"
)

func TestNewRequirement(t *testing.T) {
	testCases := []struct {
		name    string
		opts    []RequirementOption
		wantErr bool
	}{
		{
			name: "empty requirement",
			opts: nil,
		},
		{
			name: "module only",
			opts: []RequirementOption{WithModule(types.ModuleITSM)},
		},
		{
			name: "owner minimum",
			opts: []RequirementOption{WithMinRole(types.RoleOwner)},
		},
		{
			name: "admin minimum with module and scopes",
			opts: []RequirementOption{
				WithMinRole(types.RoleAdmin),
				WithModule(types.ModuleITSM),
				WithScopes("incidents.assign"),
			},
		},
		{
			name:    "viewer minimum is incomparable",
			opts:    []RequirementOption{WithMinRole(types.RoleViewer)},
			wantErr: true,
		},
		{
			name:    "agent minimum is incomparable",
			opts:    []RequirementOption{WithMinRole(types.RoleAgent)},
			wantErr: true,
		},
		{
			name:    "user minimum is incomparable",
			opts:    []RequirementOption{WithMinRole(types.RoleUser)},
			wantErr: true,
		},
		{
			name:    "scopes without a module",
			opts:    []RequirementOption{WithScopes("incidents.assign")},
			wantErr: true,
		},
		{
			name:    "unknown module",
			opts:    []RequirementOption{WithModule(types.Module("billing"))},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRequirement(tc.opts...)
			if tc.wantErr && err == nil {
				t.Error("expected a construction error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMustRequirementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid requirement")
		}
	}()
	MustRequirement(WithMinRole(types.RoleViewer))
}
