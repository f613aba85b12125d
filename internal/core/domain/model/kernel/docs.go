// Package kernel provides the shared domain primitives of the waypoint model.
//
// The package includes:
//   - UUID: the opaque 128-bit identifier carried by every entity and every foreign key
//
// Kernel values are immutable and safe for concurrent use.
package kernel
