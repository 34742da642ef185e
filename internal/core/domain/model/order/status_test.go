package order_test

import (
	"fmt"
	"testing"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.PendingPayment))
		assert.Equal(t, 2, int(order.Paid))
		assert.Equal(t, 3, int(order.InProgress))
		assert.Equal(t, 4, int(order.ProofUploaded))
		assert.Equal(t, 5, int(order.Completed))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"", "UNKNOWN", "paid", "DONE"} {
			_, err := order.ParseStatus(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		require.NoError(t, status.Validate())
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING_PAYMENT", order.PendingPayment.String())
	assert.Equal(t, "PROOF_UPLOADED", order.ProofUploaded.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{order.Completed: true, order.Cancelled: true}

	for _, status := range order.AllStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Paid:          {order.InProgress, order.Cancelled},
		order.InProgress:    {order.ProofUploaded, order.Cancelled},
		order.ProofUploaded: {order.Completed, order.Cancelled},
	}

	isAllowed := func(from, to order.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				err := from.ValidateTransition(to)

				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.True(t, from.CanTransitionTo(to))
					return
				}

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.False(t, from.CanTransitionTo(to))

				var transitionErr *order.TransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, to, transitionErr.To)
				assert.Contains(t, err.Error(), from.String())
				assert.Contains(t, err.Error(), to.String())
			})
		}
	}
}

func TestStatus_PaymentEdgeIsNotAnAdminTransition(t *testing.T) {
	err := order.PendingPayment.ValidateTransition(order.Paid)

	require.ErrorIs(t, err, order.ErrTransitionIsNotAllowed)
}

func TestStatus_TerminalStatesRejectEverything(t *testing.T) {
	for _, from := range []order.Status{order.Completed, order.Cancelled} {
		for _, to := range order.AllStatuses() {
			err := from.ValidateTransition(to)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			require.ErrorIs(t, err, order.ErrOrderIsTerminal)
		}
	}
}

func TestStatus_ValidateAssignee(t *testing.T) {
	testCases := []struct {
		status     order.Status
		assigned   bool
		unassigned bool
	}{
		{order.PendingPayment, false, true},
		{order.Paid, false, true},
		{order.InProgress, true, false},
		{order.ProofUploaded, true, false},
		{order.Completed, true, false},
		{order.Cancelled, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.assigned, tc.status.ValidateAssignee(true) == nil)
			assert.Equal(t, tc.unassigned, tc.status.ValidateAssignee(false) == nil)
		})
	}
}
