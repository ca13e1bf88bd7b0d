// Package proto declares the jobtracker gRPC service: wire messages, the
// service descriptor, a client stub and the server registration helper.
//
// Messages are plain Go structs encoded with a JSON codec registered under the
// "json" content subtype (see codec.go). Wire field names are snake_case;
// translation to and from the client's in-memory models happens in
// internal/client/client.
package proto
