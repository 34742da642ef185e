package ports

// PaymentVerifier checks the signature the payment gateway attaches to a
// successful checkout.
type PaymentVerifier interface {
	// Verify returns an error wrapping errs.ErrValueIsInvalid when signature
	// does not match the gateway order and payment identifiers.
	Verify(gatewayOrderID, paymentID, signature string) error
}
