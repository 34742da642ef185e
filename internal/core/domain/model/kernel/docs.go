// Package kernel provides the shared value objects of the order domain.
//
// The package includes:
//   - UUID: identifiers for orders, users, admins, schemes and proofs
//   - Money: non-negative monetary amounts such as a scheme's service fee
//
// Both are immutable and must be created through their constructors; the zero
// value fails Validate.
package kernel
