// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"sort"
)

// ScopeSet is a set of permission scope keys. Grants are additive: sets
// from different teams are unioned, never intersected.
type ScopeSet map[string]struct{}

func NewScopeSet(scopes ...string) ScopeSet {
	s := make(ScopeSet, len(scopes))
	for _, scope := range scopes {
		s[scope] = struct{}{}
	}
	return s
}

func (s ScopeSet) Has(scope string) bool {
	_, ok := s[scope]
	return ok
}

// Union returns a new set containing every scope from s and other.
func (s ScopeSet) Union(other ScopeSet) ScopeSet {
	out := make(ScopeSet, len(s)+len(other))
	for scope := range s {
		out[scope] = struct{}{}
	}
	for scope := range other {
		out[scope] = struct{}{}
	}
	return out
}

// ContainsAll reports whether every scope in required is present in s.
func (s ScopeSet) ContainsAll(required ScopeSet) bool {
	for scope := range required {
		if !s.Has(scope) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the set as a sorted array of scope keys.
func (s ScopeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *ScopeSet) UnmarshalJSON(data []byte) error {
	var scopes []string
	if err := json.Unmarshal(data, &scopes); err != nil {
		return err
	}
	*s = NewScopeSet(scopes...)
	return nil
}

// Slice returns the scopes in deterministic order.
func (s ScopeSet) Slice() []string {
	out := make([]string, 0, len(s))
	for scope := range s {
		out = append(out, scope)
	}
	sort.Strings(out)
	return out
}
