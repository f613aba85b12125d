// Package order provides the Order aggregate of the logistics system.
//
// The package includes:
//   - Order: the aggregate root holding the client reference, route endpoints and status
//   - Status: an enumerated but open set of order lifecycle states
//
// Key business rules:
//   - Orders must reference a client, and carry a status, an origin and a destination
//   - Status accepts any non-empty value and any transition between values
//   - The client reference is fixed at creation
package order
