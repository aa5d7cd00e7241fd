// Package alarm implements the gRPC transport for the alarm scheduler.
//
// It adapts domain types to the generated protobuf messages, maps scheduler errors to
// gRPC status codes and exposes a server that calls into a provided
// business-service interface.
package alarm
