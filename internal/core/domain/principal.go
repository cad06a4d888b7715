package domain

import "strings"

// RolePrefix is applied to the canonical role only when materializing an
// authority for an authorization check. The bare role is what gets embedded
// in token claims.
const RolePrefix = "ROLE_"

// Principal is the unified, role-bearing identity produced by resolving a
// login identifier against either the administrative or the employee source.
// It is derived, never stored.
type Principal struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

// Authority returns the ROLE_-prefixed form of the principal's role.
func (p Principal) Authority() string {
	return RolePrefix + p.Role
}

// CanonicalRole strips the authorization-scheme prefix if present.
func CanonicalRole(authority string) string {
	return strings.TrimPrefix(authority, RolePrefix)
}
