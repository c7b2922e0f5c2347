package gift

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mtlprog/giftideas/internal/model"
)

var (
	// ErrNotEditable is returned when a submit arrives while a request is in
	// flight or a result is displayed.
	ErrNotEditable = errors.New("form is not editable")

	// ErrNothingToReset is returned by TryAgain when there is no result or failure to leave.
	ErrNothingToReset = errors.New("no result to reset")
)

// Generator produces gift suggestions for a form snapshot.
type Generator interface {
	Generate(ctx context.Context, in model.FormInput) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, in model.FormInput) (string, error)

// Generate calls f(ctx, in).
func (f GeneratorFunc) Generate(ctx context.Context, in model.FormInput) (string, error) {
	return f(ctx, in)
}

// Controller owns the state of one form session.
// All methods are safe for concurrent use.
type Controller struct {
	gen    Generator
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	observers []func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates an idle controller with the given initial form values.
func NewController(gen Generator, initial model.FormInput, opts ...Option) *Controller {
	c := &Controller{
		gen:    gen,
		logger: slog.Default(),
		state:  State{Status: StatusIdle, Form: initial},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to be called with the new state after every change.
// Observers run synchronously on the goroutine that caused the change.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// UpdateField applies one user edit. Edits outside an editable state are ignored.
func (c *Controller) UpdateField(field model.Field, raw string) State {
	return c.dispatch(FieldChanged{Field: field, Raw: raw})
}

// Submit freezes the form and sends it to the generator in a new goroutine.
// The returned channel receives the settled state (Result or Failed) once and
// is then closed. Submit returns ErrNotEditable if the session is loading or
// showing a result.
//
// The request is not cancellable from the form; ctx is passed to the
// generator as is, so callers tied to short-lived contexts should detach it.
func (c *Controller) Submit(ctx context.Context) (<-chan State, error) {
	c.mu.Lock()
	if !c.state.Status.Editable() {
		status := c.state.Status
		c.mu.Unlock()
		c.logger.Debug("submit ignored", "status", status.String())
		return nil, ErrNotEditable
	}
	c.state = Reduce(c.state, SubmitStarted{})
	snapshot := c.state
	observers := c.observers
	c.mu.Unlock()

	notify(observers, snapshot)

	done := make(chan State, 1)
	go func() {
		defer close(done)

		result, err := c.gen.Generate(ctx, snapshot.Form)
		if err != nil {
			c.logger.Error("failed to generate gift ideas", "error", err)
			done <- c.dispatch(SubmitFailed{Err: err})
			return
		}
		done <- c.dispatch(SubmitSucceeded{Result: result})
	}()

	return done, nil
}

// TryAgain leaves the result or failure and returns to the editable form.
// Form values are kept.
func (c *Controller) TryAgain() (State, error) {
	c.mu.Lock()
	status := c.state.Status
	c.mu.Unlock()

	if status != StatusResult && status != StatusFailed {
		return c.State(), ErrNothingToReset
	}
	return c.dispatch(TryAgainRequested{}), nil
}

// DismissAlert clears a pending alert once it has been shown.
func (c *Controller) DismissAlert() State {
	return c.dispatch(AlertDismissed{})
}

func (c *Controller) dispatch(a Action) State {
	c.mu.Lock()
	c.state = Reduce(c.state, a)
	next := c.state
	observers := c.observers
	c.mu.Unlock()

	notify(observers, next)
	return next
}

func notify(observers []func(State), s State) {
	for _, fn := range observers {
		fn(s)
	}
}
