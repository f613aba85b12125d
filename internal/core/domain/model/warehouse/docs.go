// Package warehouse provides the Warehouse entity, identified externally by its
// unique location and managed by a user.
package warehouse
