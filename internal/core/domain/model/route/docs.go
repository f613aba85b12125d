// Package route provides the Route entity, a static record of a trip a vehicle
// makes between two points. Routes are not planned or optimized here.
package route
