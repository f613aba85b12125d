// Package parcel provides the Package entity: a physical item shipped as part of
// an order. The Go package is named parcel because package is a reserved word.
package parcel
