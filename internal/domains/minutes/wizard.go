package minutes

import (
	"errors"
	"fmt"
)

// The save wizard is the one piece of explicit protocol logic in the
// system: it exists so that rapid re-clicks or re-entry of the same
// meeting cannot append accidental duplicates. States and transitions
// are pure so they can be tested without any transport attached.
//
//	input -> check_duplicate -> success -> input   (date collision)
//	input -> confirm         -> success -> input   (no collision)

// Step identifies a wizard state.
type Step string

const (
	StepInput          Step = "input"
	StepCheckDuplicate Step = "check_duplicate"
	StepConfirm        Step = "confirm"
	StepSuccess        Step = "success"
)

// Resolution is the user's choice at the check_duplicate step.
type Resolution string

const (
	ResolutionOverwrite Resolution = "overwrite" // update the record at that date
	ResolutionAppend    Resolution = "append"    // keep both records
	ResolutionAbort     Resolution = "abort"     // back to input, nothing written
)

// ErrInvalidTransition is returned when a step is driven with an input
// it does not accept.
var ErrInvalidTransition = errors.New("invalid save wizard transition")

// Wizard is the serializable wizard state passed into and returned
// from each interaction.
type Wizard struct {
	Step    Step     `json:"step"`
	Pending *Minutes `json:"pending,omitempty"`
}

// NewWizard starts at the input step.
func NewWizard() Wizard {
	return Wizard{Step: StepInput}
}

// Submit accepts a fully built record from the input step and routes
// to the duplicate check or the plain confirmation. Nothing is written
// in either case.
func (w Wizard) Submit(record Minutes, hasDuplicate bool) (Wizard, error) {
	if w.Step != StepInput {
		return w, fmt.Errorf("%w: submit from %q", ErrInvalidTransition, w.Step)
	}

	next := Wizard{Pending: &record}
	if hasDuplicate {
		next.Step = StepCheckDuplicate
	} else {
		next.Step = StepConfirm
	}
	return next, nil
}

// Resolve applies the user's three-way duplicate choice. write reports
// whether the caller must now persist the pending record (overwrite or
// append); abort returns to input with nothing written.
func (w Wizard) Resolve(resolution Resolution) (next Wizard, write bool, err error) {
	if w.Step != StepCheckDuplicate || w.Pending == nil {
		return w, false, fmt.Errorf("%w: resolve from %q", ErrInvalidTransition, w.Step)
	}

	switch resolution {
	case ResolutionOverwrite, ResolutionAppend:
		return Wizard{Step: StepSuccess, Pending: w.Pending}, true, nil
	case ResolutionAbort:
		return NewWizard(), false, nil
	default:
		return w, false, fmt.Errorf("%w: unknown resolution %q", ErrInvalidTransition, resolution)
	}
}

// Confirm applies the yes/no confirmation for the non-duplicate path.
func (w Wizard) Confirm(yes bool) (next Wizard, write bool, err error) {
	if w.Step != StepConfirm || w.Pending == nil {
		return w, false, fmt.Errorf("%w: confirm from %q", ErrInvalidTransition, w.Step)
	}

	if !yes {
		return NewWizard(), false, nil
	}
	return Wizard{Step: StepSuccess, Pending: w.Pending}, true, nil
}

// Finish leaves the success step and returns to input. Whether the
// caller clears its form fields or keeps them for further edits is a
// presentation choice; the wizard accepts both.
func (w Wizard) Finish() (Wizard, error) {
	if w.Step != StepSuccess {
		return w, fmt.Errorf("%w: finish from %q", ErrInvalidTransition, w.Step)
	}
	return NewWizard(), nil
}
