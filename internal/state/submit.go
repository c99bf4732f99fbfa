package state

import "github.com/five82/bookshelf/internal/books"

// Messages shown to the user. The wording of the first two is fixed by the
// existing web client.
const (
	MsgFieldsRequired = "fields is required!"
	MsgCreateFailed   = "Failed to add the book. Please try again."
	MsgFetchFailed    = "Failed to load books. Please try again."
	MsgDeleteFailed   = "Failed to delete the book. Please try again."
)

// Phase is the position of the add-book workflow. PhaseValidating is passed
// through inside BeginSubmit and never observed, so the store only ever
// rests in PhaseIdle or PhaseSubmitting; the remaining phases are recorded
// as the outcome of the last attempt.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseInvalid
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseInvalid:
		return "invalid"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BeginSubmit validates the form. When every field holds non-whitespace
// text it clears the error, enters PhaseSubmitting and returns the draft to
// send. Otherwise it sets MsgFieldsRequired, stays in PhaseIdle and
// reports false. A submit already in flight also reports false.
func (s *Store) BeginSubmit() (books.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase == PhaseSubmitting {
		return books.Draft{}, false
	}

	draft := s.snapshot.Form.Draft()
	if !draft.Complete() {
		s.snapshot.Form.Error = MsgFieldsRequired
		s.snapshot.Outcome = PhaseInvalid
		return books.Draft{}, false
	}

	s.snapshot.Form.Error = ""
	s.snapshot.Phase = PhaseSubmitting
	return draft, true
}

// CompleteSubmit records the outcome of the create request and returns to
// PhaseIdle. On success the form is cleared and the caller must refetch the
// collection; on failure the fields are kept and MsgCreateFailed is shown.
func (s *Store) CompleteSubmit(err error) (refetch bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Phase = PhaseIdle
	if err != nil {
		s.snapshot.Form.Error = MsgCreateFailed
		s.snapshot.Outcome = PhaseFailed
		return false
	}

	s.snapshot.Form = FormState{}
	s.snapshot.Outcome = PhaseSuccess
	return true
}
