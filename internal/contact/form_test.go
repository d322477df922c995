package contact

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// idle keep-alive connections from the HTTP submitter tests
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func validValues() Values {
	return Values{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "+91 98765 43210",
		Subject: string(SubjectQuote),
		Message: "We need sliding doors for a villa.",
	}
}

// gate blocks every submission until released.
type gate struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func newGate() *gate { return &gate{release: make(chan struct{})} }

func (g *gate) Submit(ctx context.Context, _ Submission) error {
	g.calls.Add(1)
	select {
	case <-g.release:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	f := NewForm(Simulated{}, nil)
	defer f.Close()
	require.NoError(t, f.Set(FieldPhone, "12345"))

	started, err := f.Submit(context.Background())
	require.False(t, started)
	var inc *IncompleteError
	require.True(t, errors.As(err, &inc))
	require.Equal(t, []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}, inc.Missing)
	require.False(t, f.Submitting())
	require.Equal(t, "12345", f.Values().Phone)
}

func TestWhitespaceOnlyCountsAsMissing(t *testing.T) {
	v := validValues()
	v.Message = "   \n"
	err := v.Clean().Validate()
	var inc *IncompleteError
	require.ErrorAs(t, err, &inc)
	require.True(t, inc.Has(FieldMessage))
	require.False(t, inc.Has(FieldName))
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	done := make(chan Outcome, 1)
	f := NewForm(Simulated{Delay: 10 * time.Millisecond}, func(o Outcome) { done <- o })
	defer f.Close()
	f.Fill(validValues())

	started, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, started)
	require.True(t, f.Submitting())

	select {
	case o := <-done:
		require.True(t, o.OK())
		require.Equal(t, SuccessMessage, o.Message())
		require.Contains(t, o.Reference, "lead_")
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not complete")
	}
	require.False(t, f.Submitting())
	require.True(t, f.Values().IsZero())
}

func TestSecondSubmitWhileInFlightIsNoop(t *testing.T) {
	g := newGate()
	var completions atomic.Int32
	done := make(chan struct{}, 2)
	f := NewForm(g, func(Outcome) {
		completions.Add(1)
		done <- struct{}{}
	})
	defer f.Close()
	f.Fill(validValues())

	started, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, started)

	started, err = f.Submit(context.Background())
	require.NoError(t, err)
	require.False(t, started)

	close(g.release)
	<-done
	require.Equal(t, int32(1), completions.Load())
	require.Equal(t, int32(1), g.calls.Load())
}

func TestFailureKeepsFields(t *testing.T) {
	g := newGate()
	g.err = errors.New("endpoint down")
	done := make(chan Outcome, 1)
	f := NewForm(g, func(o Outcome) { done <- o })
	defer f.Close()
	f.Fill(validValues())

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	close(g.release)
	o := <-done
	require.False(t, o.OK())
	require.NotEqual(t, SuccessMessage, o.Message())
	require.False(t, f.Submitting())
	require.Equal(t, "Asha Verma", f.Values().Name)
}

func TestCloseDiscardsPendingCompletion(t *testing.T) {
	g := newGate()
	var called atomic.Bool
	f := NewForm(g, func(Outcome) { called.Store(true) })
	f.Fill(validValues())

	started, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, started)

	f.Close()
	require.False(t, called.Load())
	require.Equal(t, "Asha Verma", f.Values().Name)

	started, err = f.Submit(context.Background())
	require.NoError(t, err)
	require.False(t, started)
}

func TestSetUnknownField(t *testing.T) {
	f := NewForm(nil, nil)
	defer f.Close()
	require.ErrorIs(t, f.Set(Field("company"), "x"), ErrUnknownField)
}

func TestValidateRejectsUnknownSubjectAndBadEmail(t *testing.T) {
	v := validValues()
	v.Subject = "spam"
	v.Email = "not-an-email"
	err := v.Validate()
	var inc *IncompleteError
	require.ErrorAs(t, err, &inc)
	require.Empty(t, inc.Missing)
	require.ElementsMatch(t, []Field{FieldSubject, FieldEmail}, inc.Invalid)
	require.Contains(t, err.Error(), "invalid")
}

func TestCleanStripsMarkup(t *testing.T) {
	v := validValues()
	v.Name = "  <b>Asha</b> & co "
	v.Message = "<script>alert(1)</script>Size < 3m"
	c := v.Clean()
	require.Equal(t, "Asha & co", c.Name)
	require.Equal(t, "Size < 3m", c.Message)
}

func TestSimulatedHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Simulated{Delay: time.Hour}.Submit(ctx, Submission{})
	require.ErrorIs(t, err, context.Canceled)
}
