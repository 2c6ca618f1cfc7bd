// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"github.com/hi5tech/access-service/internal/types"
)

// Scope vocabulary. Closed and module partitioned; the engine treats keys
// as opaque, this package owns what exists.
const (
	ScopeIncidentsView    = "incidents.view"
	ScopeIncidentsCreate  = "incidents.create"
	ScopeIncidentsComment = "incidents.comment"
	ScopeIncidentsAssign  = "incidents.assign"
	ScopeIncidentsClose   = "incidents.close"
	ScopeIncidentsDelete  = "incidents.delete"
	ScopeRequestsView     = "requests.view"
	ScopeRequestsApprove  = "requests.approve"
	ScopeKBView           = "kb.view"
	ScopeKBEdit           = "kb.edit"
	ScopeDevicesView      = "devices.view"
	ScopeDevicesControl   = "devices.control"
)

// knownScopes is the full closed vocabulary, used to validate scope edits.
var knownScopes = types.NewScopeSet(
	ScopeIncidentsView,
	ScopeIncidentsCreate,
	ScopeIncidentsComment,
	ScopeIncidentsAssign,
	ScopeIncidentsClose,
	ScopeIncidentsDelete,
	ScopeRequestsView,
	ScopeRequestsApprove,
	ScopeKBView,
	ScopeKBEdit,
	ScopeDevicesView,
	ScopeDevicesControl,
)

// defaultScopesV1 is the static table consulted when a team is created.
// Once a team role is persisted its scopes are authoritative; changing
// this table never migrates existing teams.
var defaultScopesV1 = map[types.TeamRoleKey]types.ScopeSet{
	types.TeamRoleViewer: types.NewScopeSet(
		ScopeIncidentsView,
		ScopeRequestsView,
		ScopeKBView,
	),
	types.TeamRoleAgent: types.NewScopeSet(
		ScopeIncidentsView,
		ScopeIncidentsCreate,
		ScopeIncidentsComment,
		ScopeIncidentsAssign,
		ScopeRequestsView,
		ScopeKBView,
		ScopeDevicesView,
	),
	types.TeamRoleLead: types.NewScopeSet(
		ScopeIncidentsView,
		ScopeIncidentsCreate,
		ScopeIncidentsComment,
		ScopeIncidentsAssign,
		ScopeIncidentsClose,
		ScopeRequestsView,
		ScopeRequestsApprove,
		ScopeKBView,
		ScopeDevicesView,
		ScopeDevicesControl,
	),
	types.TeamRoleAdmin: types.NewScopeSet(
		ScopeIncidentsView,
		ScopeIncidentsCreate,
		ScopeIncidentsComment,
		ScopeIncidentsAssign,
		ScopeIncidentsClose,
		ScopeIncidentsDelete,
		ScopeRequestsView,
		ScopeRequestsApprove,
		ScopeKBView,
		ScopeKBEdit,
		ScopeDevicesView,
		ScopeDevicesControl,
	),
}

var defaultRoleNames = map[types.TeamRoleKey]string{
	types.TeamRoleViewer: "Viewer",
	types.TeamRoleAgent:  "Agent",
	types.TeamRoleLead:   "Lead",
	types.TeamRoleAdmin:  "Admin",
}

// DefaultScopes returns a copy of the default scope set for a role key.
// An unknown key yields the empty set, mirroring how a missing role is
// treated at decision time.
func DefaultScopes(key types.TeamRoleKey) types.ScopeSet {
	defaults, ok := defaultScopesV1[key]
	if !ok {
		return types.NewScopeSet()
	}
	return defaults.Union(nil)
}
