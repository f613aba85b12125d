// Package vehicle provides the Vehicle entity. A vehicle optionally has a driver,
// which is a user, and is identified externally by its unique license plate.
package vehicle
