package state

import (
	"sync"
	"time"

	"github.com/five82/bookshelf/internal/books"
)

// Field identifies one of the three form inputs.
type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldDescription
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldTitle, FieldAuthor, FieldDescription}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldDescription:
		return "description"
	default:
		return "unknown"
	}
}

// FormState holds the pending input values and the current form error.
type FormState struct {
	Title       string
	Author      string
	Description string
	Error       string
}

// Value returns the value of a single field.
func (f FormState) Value(field Field) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldAuthor:
		return f.Author
	case FieldDescription:
		return f.Description
	default:
		return ""
	}
}

// Draft converts the form into a create request, keeping values as typed.
func (f FormState) Draft() books.Draft {
	return books.Draft{Title: f.Title, Author: f.Author, Description: f.Description}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Books       []books.Book
	Form        FormState
	Phase       Phase // PhaseIdle or PhaseSubmitting
	Outcome     Phase // result of the last add attempt
	ListError   string
	Loaded      bool // at least one fetch has been applied
	LastUpdated time.Time
}

// Store is the explicit state container handed to the view. All mutation
// happens on the UI update loop; the lock keeps Snapshot safe for readers
// outside it.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot

	fetchIssued  uint64
	fetchSettled uint64 // newest generation applied or failed
}

// SetField updates one form field. No validation happens here.
func (s *Store) SetField(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldTitle:
		s.snapshot.Form.Title = value
	case FieldAuthor:
		s.snapshot.Form.Author = value
	case FieldDescription:
		s.snapshot.Form.Description = value
	}
}

// SetBooks replaces the entire collection.
func (s *Store) SetBooks(collection []books.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setBooksLocked(collection)
}

// SetError replaces the form error. An empty message clears it.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Form.Error = message
}

// SetListError replaces the error shown for list loading and deletes.
func (s *Store) SetListError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ListError = message
}

// ResetForm clears the three inputs and the form error.
func (s *Store) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Form = FormState{}
}

// BeginFetch registers a new collection fetch and returns its generation.
func (s *Store) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchIssued++
	return s.fetchIssued
}

// ApplyFetch installs the result of fetch gen unless a newer fetch has
// already settled, successfully or not. It reports whether the collection
// was replaced.
func (s *Store) ApplyFetch(gen uint64, collection []books.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.fetchSettled {
		return false
	}
	s.fetchSettled = gen
	s.setBooksLocked(collection)
	s.snapshot.ListError = ""
	return true
}

// FailFetch records a failed fetch of generation gen. The message is
// dropped when a newer fetch has already settled. A recorded failure also
// blocks older results that arrive after it.
func (s *Store) FailFetch(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.fetchSettled {
		return false
	}
	s.fetchSettled = gen
	s.snapshot.ListError = message
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	return snap
}

func (s *Store) setBooksLocked(collection []books.Book) {
	s.snapshot.Books = cloneBooks(collection)
	s.snapshot.Loaded = true
	s.snapshot.LastUpdated = time.Now()
}

func cloneBooks(items []books.Book) []books.Book {
	if len(items) == 0 {
		return nil
	}
	dup := make([]books.Book, len(items))
	copy(dup, items)
	return dup
}
