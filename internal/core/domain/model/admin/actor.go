package admin

import (
	"errors"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the administrator performing an operation, as resolved by the
// authenticator.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsSuperAdmin() bool {
	return a.role == Super
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
