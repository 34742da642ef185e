// Package scheme models the government or private schemes citizens can apply
// to through the service.
package scheme

import (
	"errors"
	"fmt"
	"strings"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
	"shasanseva/internal/pkg/guard"
)

var (
	ErrSchemeIsNotConstructed = errors.New("Scheme must be created via NewScheme or RestoreScheme")
	ErrSchemeIsInactive       = errors.New("scheme is not accepting applications")
)

// Scheme is a catalogue entry. Its service fee is what a new order is charged;
// orders copy the fee at creation so later fee changes do not affect them.
type Scheme struct {
	id         kernel.UUID
	name       string
	serviceFee kernel.Money
	active     bool
	guard      guard.ConstructorGuard
}

// NewScheme creates an active scheme.
func NewScheme(id kernel.UUID, name string, serviceFee kernel.Money) (*Scheme, error) {
	return RestoreScheme(id, name, serviceFee, true)
}

// RestoreScheme rebuilds a scheme from persistence.
func RestoreScheme(id kernel.UUID, name string, serviceFee kernel.Money, active bool) (*Scheme, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(id.Validate(), nameErr, serviceFee.Validate()); err != nil {
		return nil, err
	}

	return &Scheme{
		id:         id,
		name:       name,
		serviceFee: serviceFee,
		active:     active,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (s *Scheme) ID() kernel.UUID {
	return s.id
}

func (s *Scheme) Name() string {
	return s.name
}

func (s *Scheme) ServiceFee() kernel.Money {
	return s.serviceFee
}

func (s *Scheme) IsActive() bool {
	return s.active
}

// ValidateOrderable reports whether a new order may be placed for the scheme.
func (s *Scheme) ValidateOrderable() error {
	if !s.active {
		return errs.NewValueIsInvalidErrorWithCause("scheme", fmt.Errorf("%s: %w", s.name, ErrSchemeIsInactive))
	}
	return nil
}

func (s *Scheme) Validate() error {
	if s == nil {
		return ErrSchemeIsNotConstructed
	}
	return s.guard.Validate(ErrSchemeIsNotConstructed)
}
