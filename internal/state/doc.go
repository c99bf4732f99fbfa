// Package state holds the book manager's client-side state.
//
// # Overview
//
// Store is the single state container for the UI. It is created by the app
// package and passed to the view explicitly; nothing here is global.
//
// It holds:
//
//   - Books: the collection from the most recent applied fetch
//   - Form: the three pending input values and the form error
//   - Phase / Outcome: where the add-book workflow is, and how the last attempt ended
//   - ListError: failures of list loading and deletes
//
// # Collection Invariant
//
// The collection is only ever replaced wholesale. There is no merging or
// patching of individual books. Fetches are numbered by BeginFetch; a result
// passed to ApplyFetch with a generation older than the last applied one is
// discarded, so a slow response can never overwrite a newer snapshot.
//
// # Submission Workflow
//
//	Idle ──BeginSubmit──┬── fields blank ──> Idle (Outcome=Invalid, "fields is required!")
//	                    └── fields set ────> Submitting
//	Submitting ──CompleteSubmit(nil)──> Idle (Outcome=Success, form cleared, caller refetches)
//	Submitting ──CompleteSubmit(err)──> Idle (Outcome=Failed, fields kept, error message)
//
// BeginSubmit refuses to start a second submission while one is in flight.
//
// # Concurrency Model
//
// All mutation happens on the Bubble Tea update loop. The store still uses a
// readers-writer lock, and Snapshot returns a copy with its own books slice,
// so a snapshot handed to rendering code can never observe a later write.
//
// The zero value is ready to use:
//
//	store := &state.Store{}
package state
