// Package services contains the client use cases the CLI drives: job
// management over the job store, resume editing with import and avatar
// upload, and the assistant chat.
package services
