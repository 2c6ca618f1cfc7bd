// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Tenant struct {
	ID           string    `db:"id" json:"id"`
	RootDomain   string    `db:"root_domain" json:"root_domain"`
	Subdomain    string    `db:"subdomain" json:"subdomain"`
	CustomDomain string    `db:"custom_domain" json:"custom_domain,omitempty"`
	Name         string    `db:"name" json:"name"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Membership struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Team struct {
	ID              string    `db:"id" json:"id"`
	TenantID        string    `db:"tenant_id" json:"tenant_id"`
	Key             string    `db:"key" json:"key"`
	Name            string    `db:"name" json:"name"`
	Modules         []Module  `db:"modules" json:"modules"`
	IsDefaultTriage bool      `db:"is_default_triage" json:"is_default_triage"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type TeamRole struct {
	ID     string      `db:"id" json:"id"`
	TeamID string      `db:"team_id" json:"team_id"`
	Key    TeamRoleKey `db:"key" json:"key"`
	Name   string      `db:"name" json:"name"`
	Scopes ScopeSet    `db:"scopes" json:"scopes"`
}

type TeamMembership struct {
	ID           string `db:"id"`
	TeamID       string `db:"team_id"`
	TeamRoleID   string `db:"team_role_id"`
	MembershipID string `db:"membership_id"`
}

type ModuleAssignment struct {
	MembershipID string `db:"membership_id"`
	Module       Module `db:"module"`
}

type Invite struct {
	ID        string    `db:"id" json:"id"`
	Token     string    `db:"token" json:"token"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Email     string    `db:"email" json:"email"`
	Role      Role      `db:"role" json:"role"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TenantUser is the admin view of a tenant's people: established
// memberships plus invites that have not been accepted yet. User emails
// live with the identity provider, so only pending rows carry one.
type TenantUser struct {
	UserID  string `json:"user_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Role    Role   `json:"role"`
	Pending bool   `json:"pending"`
}
