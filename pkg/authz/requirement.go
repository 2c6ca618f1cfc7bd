// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"fmt"

	"github.com/hi5tech/access-service/internal/types"
)

// Requirement declares what a route needs from the caller. It is validated
// when built, so a misconfigured guard fails at wiring time instead of
// producing an ambiguous runtime decision.
type Requirement struct {
	module  types.Module
	minRole types.Role
	scopes  types.ScopeSet
}

type RequirementOption func(*Requirement)

// WithModule gates the route on an explicit module assignment.
func WithModule(module types.Module) RequirementOption {
	return func(r *Requirement) {
		r.module = module
	}
}

// WithMinRole requires at least the given membership role. Only the
// privileged tier (owner, admin) is ordered; anything else is rejected by
// NewRequirement.
func WithMinRole(role types.Role) RequirementOption {
	return func(r *Requirement) {
		r.minRole = role
	}
}

// WithScopes requires every listed scope to be present in the caller's
// effective scope union for the module.
func WithScopes(scopes ...string) RequirementOption {
	return func(r *Requirement) {
		r.scopes = types.NewScopeSet(scopes...)
	}
}

func NewRequirement(opts ...RequirementOption) (Requirement, error) {
	var r Requirement
	for _, opt := range opts {
		opt(&r)
	}

	if r.minRole != "" && !r.minRole.Privileged() {
		// user, viewer and agent are incomparable; a minimum over them
		// is a caller bug, not a runtime ambiguity
		return Requirement{}, fmt.Errorf("minimum role %q is not orderable", r.minRole)
	}

	if len(r.scopes) > 0 && r.module == "" {
		return Requirement{}, fmt.Errorf("scope requirements need a module")
	}

	if r.module != "" {
		if _, err := types.ParseModule(string(r.module)); err != nil {
			return Requirement{}, err
		}
	}

	return r, nil
}

// MustRequirement is for package level route tables where a bad requirement
// should stop the program at startup.
func MustRequirement(opts ...RequirementOption) Requirement {
	r, err := NewRequirement(opts...)
	if err != nil {
		panic(err.Error())
	}
	return r
}

func (r Requirement) Module() types.Module   { return r.module }
func (r Requirement) MinRole() types.Role    { return r.minRole }
func (r Requirement) Scopes() types.ScopeSet { return r.scopes }
