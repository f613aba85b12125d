// Package policy implements the access policy gate: every service operation is
// named by an Operation, each Operation maps to the set of roles allowed to call
// it, and Authorize checks a caller Identity against that set.
//
// The identity of the caller travels in context.Context. Transports place it
// there with WithIdentity after authenticating the request; services read it
// with IdentityFrom.
package policy
