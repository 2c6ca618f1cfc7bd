// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

// Role is the coarse membership role of a user within a tenant. Owner and
// admin form the privileged tier, with owner above admin; user, viewer and
// agent are mutually incomparable specializations below that tier.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
	RoleAgent  Role = "agent"
)

// rolePrivilege maps the privileged tier to a comparable rank. Roles
// outside the tier have no rank and never satisfy a minimum requirement
// other than their own.
var rolePrivilege = map[Role]int{
	RoleOwner: 2,
	RoleAdmin: 1,
}

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleOwner, RoleAdmin, RoleUser, RoleViewer, RoleAgent:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Privileged reports whether the role belongs to the owner/admin tier.
func (r Role) Privileged() bool {
	_, ok := rolePrivilege[r]
	return ok
}

// AtLeast reports whether r satisfies a minimum role requirement. It is
// only defined for privileged minimums; callers are expected to have
// rejected anything else when the requirement was built.
func (r Role) AtLeast(min Role) bool {
	minRank, ok := rolePrivilege[min]
	if !ok {
		return r == min
	}
	rank, ok := rolePrivilege[r]
	if !ok {
		return false
	}
	return rank >= minRank
}

// TeamRoleKey identifies one of the four permission bundles provisioned on
// every team. It is independent of the membership Role enum.
type TeamRoleKey string

const (
	TeamRoleViewer TeamRoleKey = "viewer"
	TeamRoleAgent  TeamRoleKey = "agent"
	TeamRoleLead   TeamRoleKey = "lead"
	TeamRoleAdmin  TeamRoleKey = "admin"
)

func ParseTeamRoleKey(s string) (TeamRoleKey, error) {
	switch k := TeamRoleKey(s); k {
	case TeamRoleViewer, TeamRoleAgent, TeamRoleLead, TeamRoleAdmin:
		return k, nil
	}
	return "", fmt.Errorf("unknown team role %q", s)
}

// TeamRoleKeys lists every key expected on a fully provisioned team.
func TeamRoleKeys() []TeamRoleKey {
	return []TeamRoleKey{TeamRoleViewer, TeamRoleAgent, TeamRoleLead, TeamRoleAdmin}
}

// Module is a top level product area requiring explicit entitlement.
type Module string

const (
	ModuleITSM        Module = "itsm"
	ModuleControl     Module = "control"
	ModuleSelfService Module = "selfservice"
)

func ParseModule(s string) (Module, error) {
	switch m := Module(s); m {
	case ModuleITSM, ModuleControl, ModuleSelfService:
		return m, nil
	}
	return "", fmt.Errorf("unknown module %q", s)
}
