package payment_test

import (
	"strings"
	"testing"

	"shasanseva/internal/adapters/out/payment"
	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACVerifier(t *testing.T) {
	verifier := payment.NewHMACVerifier("webhook-secret")
	signature := verifier.Sign("order_Nx1", "pay_7Qa")

	t.Run("signature is hex sha256", func(t *testing.T) {
		assert.Len(t, signature, 64)
		assert.Equal(t, strings.ToLower(signature), signature)
	})

	t.Run("matching signature is accepted", func(t *testing.T) {
		require.NoError(t, verifier.Verify("order_Nx1", "pay_7Qa", signature))
		require.NoError(t, verifier.Verify("order_Nx1", "pay_7Qa", strings.ToUpper(signature)))
	})

	t.Run("tampered values are rejected", func(t *testing.T) {
		testCases := []struct {
			name           string
			gatewayOrderID string
			paymentID      string
			signature      string
		}{
			{"other payment", "order_Nx1", "pay_other", signature},
			{"other gateway order", "order_other", "pay_7Qa", signature},
			{"swapped ids", "pay_7Qa", "order_Nx1", signature},
			{"empty signature", "order_Nx1", "pay_7Qa", ""},
			{"truncated signature", "order_Nx1", "pay_7Qa", signature[:40]},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := verifier.Verify(tc.gatewayOrderID, tc.paymentID, tc.signature)

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				require.ErrorIs(t, err, payment.ErrSignatureMismatch)
			})
		}
	})

	t.Run("other secret is rejected", func(t *testing.T) {
		other := payment.NewHMACVerifier("another-secret")

		require.ErrorIs(t, other.Verify("order_Nx1", "pay_7Qa", signature), errs.ErrValueIsInvalid)
	})
}
