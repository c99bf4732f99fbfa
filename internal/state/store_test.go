package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/bookshelf/internal/books"
)

func TestStore_SetBooksAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.SetBooks([]books.Book{{ID: "1", Title: "Dune"}, {ID: "2", Title: "Emma"}})

	snap := s.Snapshot()
	if len(snap.Books) != 2 || snap.Books[0].ID != "1" {
		t.Fatalf("snapshot books = %#v, want 2 books", snap.Books)
	}
	if !snap.Loaded {
		t.Fatalf("Loaded = false, want true after SetBooks")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Books[0].Title = "changed"
	if got := s.Snapshot().Books[0].Title; got != "Dune" {
		t.Fatalf("Snapshot should clone books; got title %q want Dune", got)
	}
}

func TestStore_SetBooksReplacesWholeCollection(t *testing.T) {
	var s Store
	s.SetBooks([]books.Book{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	s.SetBooks([]books.Book{{ID: "9"}})

	snap := s.Snapshot()
	if len(snap.Books) != 1 || snap.Books[0].ID != "9" {
		t.Fatalf("books = %#v, want only id 9", snap.Books)
	}

	s.SetBooks(nil)
	if got := s.Snapshot().Books; len(got) != 0 {
		t.Fatalf("books = %#v, want empty", got)
	}
}

func TestStore_SetFieldAndError(t *testing.T) {
	var s Store

	s.SetField(FieldTitle, "Dune")
	s.SetField(FieldAuthor, "Frank Herbert")
	s.SetField(FieldDescription, "  ")
	s.SetError("boom")

	form := s.Snapshot().Form
	want := FormState{Title: "Dune", Author: "Frank Herbert", Description: "  ", Error: "boom"}
	if form != want {
		t.Fatalf("form = %#v, want %#v", form, want)
	}
	if got := form.Value(FieldAuthor); got != "Frank Herbert" {
		t.Fatalf("Value(author) = %q, want Frank Herbert", got)
	}

	s.SetError("")
	if got := s.Snapshot().Form.Error; got != "" {
		t.Fatalf("Error = %q, want cleared", got)
	}

	s.ResetForm()
	if got := s.Snapshot().Form; got != (FormState{}) {
		t.Fatalf("form after reset = %#v, want zero", got)
	}
}

func TestStore_ApplyFetchDropsStaleGenerations(t *testing.T) {
	var s Store

	first := s.BeginFetch()
	second := s.BeginFetch()
	if second <= first {
		t.Fatalf("BeginFetch generations = %d then %d, want increasing", first, second)
	}

	if !s.ApplyFetch(second, []books.Book{{ID: "new"}}) {
		t.Fatalf("ApplyFetch(second) = false, want true")
	}
	if s.ApplyFetch(first, []books.Book{{ID: "old"}}) {
		t.Fatalf("ApplyFetch(first) = true, want stale result dropped")
	}
	snap := s.Snapshot()
	if len(snap.Books) != 1 || snap.Books[0].ID != "new" {
		t.Fatalf("books = %#v, want the newest fetch", snap.Books)
	}
}

func TestStore_ApplyFetchClearsListError(t *testing.T) {
	var s Store
	s.SetListError(MsgFetchFailed)

	gen := s.BeginFetch()
	s.ApplyFetch(gen, nil)
	if got := s.Snapshot().ListError; got != "" {
		t.Fatalf("ListError = %q, want cleared after successful fetch", got)
	}
}

func TestStore_FailFetch(t *testing.T) {
	var s Store

	stale := s.BeginFetch()
	fresh := s.BeginFetch()
	s.ApplyFetch(fresh, []books.Book{{ID: "1"}})

	if s.FailFetch(stale, MsgFetchFailed) {
		t.Fatalf("FailFetch(stale) = true, want dropped")
	}
	if got := s.Snapshot().ListError; got != "" {
		t.Fatalf("ListError = %q, want empty after stale failure", got)
	}

	next := s.BeginFetch()
	if !s.FailFetch(next, MsgFetchFailed) {
		t.Fatalf("FailFetch(next) = false, want recorded")
	}
	snap := s.Snapshot()
	if snap.ListError != MsgFetchFailed {
		t.Fatalf("ListError = %q, want %q", snap.ListError, MsgFetchFailed)
	}
	if len(snap.Books) != 1 {
		t.Fatalf("books = %#v, want previous collection kept", snap.Books)
	}
}

func TestStore_FailFetchBlocksOlderResults(t *testing.T) {
	var s Store

	first := s.BeginFetch()
	s.ApplyFetch(first, []books.Book{{ID: "1"}})

	refresh := s.BeginFetch()
	refetch := s.BeginFetch()
	if !s.FailFetch(refetch, MsgFetchFailed) {
		t.Fatalf("FailFetch(refetch) = false, want recorded")
	}
	if s.ApplyFetch(refresh, []books.Book{{ID: "1"}, {ID: "2"}, {ID: "3"}}) {
		t.Fatalf("ApplyFetch(refresh) = true, want result older than the failure dropped")
	}

	snap := s.Snapshot()
	if snap.ListError != MsgFetchFailed {
		t.Fatalf("ListError = %q, want %q kept", snap.ListError, MsgFetchFailed)
	}
	if len(snap.Books) != 1 || snap.Books[0].ID != "1" {
		t.Fatalf("books = %#v, want the collection from before the failure", snap.Books)
	}

	retry := s.BeginFetch()
	if !s.ApplyFetch(retry, []books.Book{{ID: "1"}, {ID: "2"}}) {
		t.Fatalf("ApplyFetch(retry) = false, want newer fetch applied")
	}
	if got := s.Snapshot().ListError; got != "" {
		t.Fatalf("ListError = %q, want cleared by newer fetch", got)
	}
}

func fillForm(s *Store, title, author, description string) {
	s.SetField(FieldTitle, title)
	s.SetField(FieldAuthor, author)
	s.SetField(FieldDescription, description)
}

func TestBeginSubmit_RequiresEveryField(t *testing.T) {
	tests := []struct {
		name                       string
		title, author, description string
	}{
		{"empty title", "", "Frank Herbert", "Spice"},
		{"empty author", "Dune", "", "Spice"},
		{"empty description", "Dune", "Frank Herbert", ""},
		{"whitespace title", "   ", "Frank Herbert", "Spice"},
		{"whitespace author", "Dune", "\t", "Spice"},
		{"whitespace description", "Dune", "Frank Herbert", " \n "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Store
			fillForm(&s, tt.title, tt.author, tt.description)

			if _, ok := s.BeginSubmit(); ok {
				t.Fatalf("BeginSubmit ok = true, want false")
			}
			snap := s.Snapshot()
			if snap.Form.Error != MsgFieldsRequired {
				t.Fatalf("Error = %q, want %q", snap.Form.Error, MsgFieldsRequired)
			}
			if snap.Phase != PhaseIdle || snap.Outcome != PhaseInvalid {
				t.Fatalf("phase = %s outcome = %s, want idle/invalid", snap.Phase, snap.Outcome)
			}
			if snap.Form.Title != tt.title || snap.Form.Author != tt.author || snap.Form.Description != tt.description {
				t.Fatalf("form values changed on validation failure: %#v", snap.Form)
			}
		})
	}
}

func TestBeginSubmit_ValidDraftKeepsValuesAsTyped(t *testing.T) {
	var s Store
	fillForm(&s, " Dune ", "Frank Herbert", "Spice")
	s.SetError(MsgCreateFailed)

	draft, ok := s.BeginSubmit()
	if !ok {
		t.Fatalf("BeginSubmit ok = false, want true")
	}
	want := books.Draft{Title: " Dune ", Author: "Frank Herbert", Description: "Spice"}
	if draft != want {
		t.Fatalf("draft = %#v, want %#v", draft, want)
	}
	snap := s.Snapshot()
	if snap.Form.Error != "" {
		t.Fatalf("Error = %q, want cleared while submitting", snap.Form.Error)
	}
	if snap.Phase != PhaseSubmitting {
		t.Fatalf("Phase = %s, want submitting", snap.Phase)
	}

	if _, ok := s.BeginSubmit(); ok {
		t.Fatalf("second BeginSubmit while submitting ok = true, want false")
	}
}

func TestCompleteSubmit_Success(t *testing.T) {
	var s Store
	fillForm(&s, "Dune", "Frank Herbert", "Spice")
	s.BeginSubmit()

	if !s.CompleteSubmit(nil) {
		t.Fatalf("CompleteSubmit(nil) = false, want refetch")
	}
	snap := s.Snapshot()
	if snap.Form != (FormState{}) {
		t.Fatalf("form = %#v, want cleared", snap.Form)
	}
	if snap.Phase != PhaseIdle || snap.Outcome != PhaseSuccess {
		t.Fatalf("phase = %s outcome = %s, want idle/success", snap.Phase, snap.Outcome)
	}
}

func TestCompleteSubmit_FailureKeepsFields(t *testing.T) {
	var s Store
	fillForm(&s, "Dune", "Frank Herbert", "Spice")
	s.BeginSubmit()

	if s.CompleteSubmit(errors.New("status 500")) {
		t.Fatalf("CompleteSubmit(err) = true, want no refetch")
	}
	snap := s.Snapshot()
	want := FormState{Title: "Dune", Author: "Frank Herbert", Description: "Spice", Error: MsgCreateFailed}
	if snap.Form != want {
		t.Fatalf("form = %#v, want %#v", snap.Form, want)
	}
	if snap.Phase != PhaseIdle || snap.Outcome != PhaseFailed {
		t.Fatalf("phase = %s outcome = %s, want idle/failed", snap.Phase, snap.Outcome)
	}

	// Manual resubmission is allowed after a failure.
	if _, ok := s.BeginSubmit(); !ok {
		t.Fatalf("resubmit after failure ok = false, want true")
	}
}
