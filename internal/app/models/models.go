package models

import "strings"

// RoleType defines the user role type
type RoleType string

const (
	RoleNone       RoleType = "none"
	RoleInstructor RoleType = "instructor"
	RoleAdmin      RoleType = "admin"
)

// IsValid reports whether r is one of the enumerated roles
func (r RoleType) IsValid() bool {
	switch r {
	case RoleNone, RoleInstructor, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasRole reports whether a holder of r may act with the required role.
// Admin satisfies every requirement; otherwise roles must match exactly.
func (r RoleType) HasRole(required RoleType) bool {
	if !r.IsValid() || !required.IsValid() {
		return false
	}
	if r == RoleAdmin {
		return true
	}
	return r == required
}

// ParseRole parses a role name case-insensitively. Blank input is not a role;
// demoting a user takes an explicit "none".
func ParseRole(value string) (RoleType, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	role := RoleType(value)
	return role, role.IsValid()
}

// ClassStatus is the review state of a class offering
type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "denied"
)

// IsValid reports whether s is one of the enumerated statuses
func (s ClassStatus) IsValid() bool {
	switch s {
	case ClassPending, ClassApproved, ClassDenied:
		return true
	default:
		return false
	}
}

// ParseClassStatus parses a status name case-insensitively
func ParseClassStatus(value string) (ClassStatus, bool) {
	status := ClassStatus(strings.ToLower(strings.TrimSpace(value)))
	return status, status.IsValid()
}
