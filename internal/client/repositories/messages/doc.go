// Package messages persists the assistant chat log.
//
// Messages are only ever appended; List returns them in append order, which
// is tracked by a monotonically increasing seq column rather than by the
// timestamp so that two messages created in the same instant keep their order.
package messages
