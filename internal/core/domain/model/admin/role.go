// Package admin models the acting administrator of an order operation.
package admin

import (
	"fmt"

	"shasanseva/internal/pkg/errs"
)

// Role governs which ownership checks apply to an administrator.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota

	// Regular may only progress orders it has picked up, or unassigned ones.
	Regular

	// Super bypasses ownership checks and may act on any order.
	Super
)

var roleNames = map[Role]string{
	Regular: "ADMIN",
	Super:   "SUPER_ADMIN",
}

// ParseRole maps the persisted/claim form ("ADMIN", "SUPER_ADMIN") to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
