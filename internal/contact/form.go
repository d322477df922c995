package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// SuccessMessage is shown after a lead is accepted.
const SuccessMessage = "Thank you for contacting us! We'll get back to you within 24 hours."

// ErrUnknownField is returned by Set for a field outside the form.
var ErrUnknownField = errors.New("contact: unknown field")

// Outcome is the result of a completed submission.
type Outcome struct {
	Reference string
	Err       error
}

// OK reports whether the submission was accepted.
func (o Outcome) OK() bool { return o.Err == nil }

// Message is the text shown to the visitor.
func (o Outcome) Message() string {
	if o.OK() {
		return SuccessMessage
	}
	return "Sorry, we could not send your message. Please try again or call us directly."
}

// Form is the state of one mounted contact form.
type Form struct {
	submitter  Submitter
	onComplete func(Outcome)

	mu         sync.Mutex
	values     Values
	submitting bool
	closed     bool
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewForm returns an empty form. onComplete runs on the submitting goroutine
// once per accepted Submit, unless the form is closed first. It must not call
// Close.
func NewForm(s Submitter, onComplete func(Outcome)) *Form {
	if s == nil {
		s = Simulated{Delay: DefaultDelay}
	}
	return &Form{submitter: s, onComplete: onComplete}
}

// Set updates a single field.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.values.set(field, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Fill replaces every field.
func (f *Form) Fill(v Values) {
	f.mu.Lock()
	f.values = v
	f.mu.Unlock()
}

// Values returns the current field contents.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the fields and starts delivery in the background. It
// returns an *IncompleteError when required fields are blank, and
// (false, nil) when a submission is already in flight or the form is closed.
func (f *Form) Submit(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.submitting {
		return false, nil
	}
	clean := f.values.Clean()
	if err := clean.Validate(); err != nil {
		return false, err
	}

	sub := NewSubmission(clean)
	runCtx, cancel := context.WithCancel(ctx)
	f.submitting = true
	f.cancel = cancel
	f.done = make(chan struct{})
	go f.deliver(runCtx, sub, f.done)
	return true, nil
}

func (f *Form) deliver(ctx context.Context, sub Submission, done chan struct{}) {
	defer close(done)
	err := f.submitter.Submit(ctx, sub)

	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if f.closed {
		// torn down while in flight; drop the completion
		f.mu.Unlock()
		return
	}
	f.submitting = false
	if err == nil {
		f.values = Values{}
	}
	cb := f.onComplete
	f.mu.Unlock()

	if cb != nil {
		cb(Outcome{Reference: sub.Reference, Err: err})
	}
}

// Close tears the form down. Any in-flight submission is cancelled and its
// completion discarded. Close waits for the delivery goroutine to exit.
func (f *Form) Close() {
	f.mu.Lock()
	f.closed = true
	cancel, done := f.cancel, f.done
	f.cancel = nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
