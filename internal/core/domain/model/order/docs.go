// Package order provides the Order aggregate of the scheme assistance service
// and the state machine its status follows.
//
// The package includes:
//   - Order: the aggregate root holding payment, assignment and progress data
//   - Status: the lifecycle states and the admin transition table
//   - Patch: a conditional change computed from an order snapshot and applied
//     atomically by the store
//   - Proof: evidence attached to an order while it is being processed
//   - TransitionError: the structured rejection of a requested change
//
// Key business rules:
//   - Status moves forward only: PENDING_PAYMENT -> PAID -> IN_PROGRESS ->
//     PROOF_UPLOADED -> COMPLETED, with CANCELLED reachable from PAID,
//     IN_PROGRESS and PROOF_UPLOADED
//   - COMPLETED and CANCELLED are terminal
//   - PENDING_PAYMENT -> PAID happens only through payment confirmation
//   - The assignee is set once, when the order is picked up, and never changes
//   - The payment amount is fixed when the order is created
package order
