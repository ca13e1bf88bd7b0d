// Package jobstore holds the canonical in-memory collection of job records
// and keeps it in step with the remote persistence service.
//
// # Write model
//
// Every mutation is applied to the local collection first, under the store
// mutex, and only then sent to the remote. Readers therefore never observe a
// half-applied operation and see the change before the remote confirms it.
//
//   - Add inserts the record at the head with a temporary id ("tmp-" + uuid).
//     A successful create swaps in the server id in place; a failed create
//     removes the record and returns the error.
//   - Update and Delete are not rolled back when the remote call fails; the
//     error is logged and returned.
//
// # Lanes
//
// Remote calls for one logical record go through a FIFO lane keyed by the
// record's first local id, so they reach the server in the order they were
// issued locally even when issued from different goroutines. Updates and
// deletes issued while the create is still in flight wait on the lane and are
// sent with the server id. If the create fails they are dropped with
// ErrCreateAborted. Records with different ids never wait on each other.
//
// Pending reports whether a record still has remote calls outstanding.
package jobstore
