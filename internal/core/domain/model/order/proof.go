package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
)

var ErrProofIsNotAccepted = errors.New("proofs are accepted only while the order is being processed")

// ProofType describes what a proof shows.
type ProofType string

const (
	ProofReceipt     ProofType = "RECEIPT"
	ProofScreenshot  ProofType = "SCREENSHOT"
	ProofReferenceID ProofType = "REFERENCE_ID"
	ProofOther       ProofType = "OTHER"
)

// ParseProofType validates the API form of a proof type.
func ParseProofType(s string) (ProofType, error) {
	switch t := ProofType(s); t {
	case ProofReceipt, ProofScreenshot, ProofReferenceID, ProofOther:
		return t, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("proofType", fmt.Errorf("%q is not a valid proof type", s))
}

// Proof is evidence, uploaded by the processing administrator, that the scheme
// application was submitted on the citizen's behalf. The file itself lives in
// object storage under FileKey.
type Proof struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	UploadedBy  kernel.UUID
	Type        ProofType
	FileKey     string
	FileName    string
	Description string
	CreatedAt   time.Time
}

// NewProof validates and creates a proof record.
func NewProof(orderID, uploadedBy kernel.UUID, proofType ProofType, fileKey, fileName, description string, now time.Time) (Proof, error) {
	var fieldErrs []error
	if strings.TrimSpace(fileKey) == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("fileKey"))
	}
	if strings.TrimSpace(fileName) == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("fileName"))
	}
	if _, err := ParseProofType(string(proofType)); err != nil {
		fieldErrs = append(fieldErrs, err)
	}

	if err := errors.Join(append(fieldErrs, orderID.Validate(), uploadedBy.Validate())...); err != nil {
		return Proof{}, err
	}

	return Proof{
		ID:          kernel.NewUUID(),
		OrderID:     orderID,
		UploadedBy:  uploadedBy,
		Type:        proofType,
		FileKey:     fileKey,
		FileName:    fileName,
		Description: description,
		CreatedAt:   now,
	}, nil
}

// AcceptsProofs reports whether proofs may be attached in the current status.
func (s Status) AcceptsProofs() bool {
	return s == InProgress || s == ProofUploaded
}
