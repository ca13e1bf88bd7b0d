// Package client contains the client side of the jobtracker persistence boundary.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): per-record
//     job CRUD, the resume document, avatar presigned URLs and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, bounds each
//     call by a request timeout and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     opening an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use once constructed. All operations accept
// context.Context and honor cancellation.
package client
