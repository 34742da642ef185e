// Package payment verifies callbacks from the payment gateway.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"shasanseva/internal/pkg/errs"
)

var ErrSignatureMismatch = errors.New("payment signature does not match")

// HMACVerifier checks gateway signatures of the form
// hex(HMAC-SHA256(secret, gatewayOrderID + "|" + paymentID)).
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Sign returns the signature the gateway would attach for the pair.
func (v *HMACVerifier) Sign(gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *HMACVerifier) Verify(gatewayOrderID, paymentID, signature string) error {
	expected := v.Sign(gatewayOrderID, paymentID)
	got := strings.ToLower(strings.TrimSpace(signature))

	if !hmac.Equal([]byte(expected), []byte(got)) {
		return errs.NewValueIsInvalidErrorWithCause("signature", ErrSignatureMismatch)
	}
	return nil
}
