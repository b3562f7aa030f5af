// Package client talks to the study guide server.
//
// The Client interface is the contract the screens depend on; GRPCClient is
// its gRPC implementation. It keeps the session token returned by Login,
// attaches it to every call through an interceptor and maps gRPC status
// codes back to the sentinel errors of internal/common, so callers can use
// errors.Is regardless of transport. ErrUnavailable is returned when the
// server cannot be reached.
package client
