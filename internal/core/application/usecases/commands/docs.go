// Package commands contains validated inputs of the operations that modify system state.
//
// Every command is an immutable value object built by its constructor, which checks
// every required field and joins all failures. A command that reaches a service has
// therefore already passed required-field validation, so a missing field never costs
// a store round trip. Zero-value commands fail Validate.
package commands
