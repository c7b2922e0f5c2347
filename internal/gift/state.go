// Package gift implements the form session controller: one editable FormInput,
// one outbound suggestion request at a time, and the view state derived from them.
package gift

import (
	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/model"
)

// Status is the active view mode of a form session.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusResult
	StatusFailed
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusResult:
		return "result"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Editable reports whether the form accepts edits and submits.
// Failed is presented as Idle with an alert.
func (s Status) Editable() bool {
	return s == StatusIdle || s == StatusFailed
}

// State is the complete state of one form session.
type State struct {
	Status Status
	Form   model.FormInput
	Result string // set only in StatusResult
	Alert  string // pending user notification, cleared by AlertDismissed
}

// Action is an event that moves State forward. See Reduce.
type Action interface {
	action()
}

// FieldChanged carries one user edit.
type FieldChanged struct {
	Field model.Field
	Raw   string
}

// SubmitStarted freezes the form and enters Loading.
type SubmitStarted struct{}

// SubmitSucceeded carries the suggestion text.
type SubmitSucceeded struct {
	Result string
}

// SubmitFailed records a failed request.
type SubmitFailed struct {
	Err error
}

// TryAgainRequested returns to the editable form.
type TryAgainRequested struct{}

// AlertDismissed clears a shown alert.
type AlertDismissed struct{}

func (FieldChanged) action()      {}
func (SubmitStarted) action()     {}
func (SubmitSucceeded) action()   {}
func (SubmitFailed) action()      {}
func (TryAgainRequested) action() {}
func (AlertDismissed) action()    {}

// Reduce applies a to s and returns the next state.
// Actions that are not valid in the current status return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FieldChanged:
		if !s.Status.Editable() {
			return s
		}
		s.Form = s.Form.With(a.Field, a.Raw)
	case SubmitStarted:
		if !s.Status.Editable() {
			return s
		}
		s.Status = StatusLoading
		s.Result = ""
		s.Alert = ""
	case SubmitSucceeded:
		if s.Status != StatusLoading {
			return s
		}
		s.Status = StatusResult
		s.Result = a.Result
	case SubmitFailed:
		if s.Status != StatusLoading {
			return s
		}
		s.Status = StatusFailed
		s.Result = ""
		s.Alert = config.FailureMessage
	case TryAgainRequested:
		if s.Status != StatusResult && s.Status != StatusFailed {
			return s
		}
		s.Status = StatusIdle
		s.Result = ""
		s.Alert = ""
	case AlertDismissed:
		s.Alert = ""
	}
	return s
}
