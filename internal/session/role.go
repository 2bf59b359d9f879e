// Package session owns the authenticated-user lifecycle for the maxfit CLI:
// hydration from durable storage, login, logout, registration, and role
// predicates. It is the single writer of authentication state.
package session

import "strings"

// Role is the closed set of user roles known to the MaxFit backend.
// The zero value means "no role required" when used as a requirement.
type Role string

const (
	// RoleNone is the absence of a role requirement.
	RoleNone Role = ""
	// RoleTrainee is a student user ("aluno" on the wire).
	RoleTrainee Role = "ALUNO"
	// RoleTrainer is a personal trainer ("personal" on the wire).
	RoleTrainer Role = "PERSONAL"
)

// ParseRole normalizes an external role string (backend response, persisted
// identity, CLI flag) into a Role. This is the single normalization point;
// everything past it compares Roles directly. Unrecognized strings map to
// RoleNone.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALUNO", "TRAINEE":
		return RoleTrainee
	case "PERSONAL", "TRAINER":
		return RoleTrainer
	default:
		return RoleNone
	}
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleTrainee || r == RoleTrainer
}

// String returns the wire value of the role.
func (r Role) String() string {
	return string(r)
}
