// Package services provides domain services that make decisions spanning the
// order aggregate and the acting administrator.
//
// The package includes:
//   - OrderLifecycle: the transition table, ownership gate and side-effect
//     planning for administrator operations on orders
//
// Services here perform no I/O; callers load the order, ask for a decision and
// write the resulting patch.
package services
