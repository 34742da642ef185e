package commands

import (
	"errors"

	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/guard"
)

var ErrAddProofCommandIsNotConstructed = errors.New(
	"AddProofCommand must be created via NewAddProofCommand constructor",
)

// AddProofCommand attaches a file reference (receipt, screenshot, ...) to an
// order being processed. The file itself lives in object storage under fileKey.
type AddProofCommand struct {
	orderID     kernel.UUID
	actor       admin.Actor
	proofType   order.ProofType
	fileKey     string
	fileName    string
	description string

	guard guard.ConstructorGuard
}

func NewAddProofCommand(
	orderID kernel.UUID,
	actor admin.Actor,
	proofType order.ProofType,
	fileKey, fileName, description string,
) (AddProofCommand, error) {
	_, typeErr := order.ParseProofType(string(proofType))
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		typeErr,
		required("fileKey", fileKey),
		required("fileName", fileName),
	); err != nil {
		return AddProofCommand{}, err
	}

	return AddProofCommand{
		orderID:     orderID,
		actor:       actor,
		proofType:   proofType,
		fileKey:     fileKey,
		fileName:    fileName,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddProofCommand) Validate() error {
	return c.guard.Validate(ErrAddProofCommandIsNotConstructed)
}

func (c AddProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddProofCommand) Actor() admin.Actor {
	return c.actor
}

func (c AddProofCommand) ProofType() order.ProofType {
	return c.proofType
}

func (c AddProofCommand) FileKey() string {
	return c.fileKey
}

func (c AddProofCommand) FileName() string {
	return c.fileName
}

func (c AddProofCommand) Description() string {
	return c.description
}
