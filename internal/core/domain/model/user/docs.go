// Package user provides the User entity. Users are referenced by orders as clients,
// by vehicles as drivers and by warehouses as managers.
//
// Key business rules:
//   - Email is required and unique across users (enforced by the store)
//   - Role is either ADMIN or USER and cannot change after registration
package user
