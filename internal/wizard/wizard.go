// Package wizard sequences the six event-creation steps. The state is
// an explicit value owned by the caller, not ambient globals; the
// address step is skipped for online events.
package wizard

import "ticketeiro/internal/models"

type Step int

const (
	StepFirst Step = iota // identity, mode, category
	StepSecond            // address
	StepThird             // description
	StepFourth            // banner image
	StepFifth             // days, batches and tickets editor
	StepSixth             // summary and confirm
)

func (s Step) String() string {
	switch s {
	case StepFirst:
		return "FIRST"
	case StepSecond:
		return "SECOND"
	case StepThird:
		return "THIRD"
	case StepFourth:
		return "FOURTH"
	case StepFifth:
		return "FIFTH"
	case StepSixth:
		return "SIXTH"
	}
	return "UNKNOWN"
}

// State is one wizard's position plus the event mode that drives the
// skip logic. Mode may change mid-flight; the skip condition is
// re-evaluated at every transition against the current mode, so a
// draft switched to ONLINE while sitting on the address step still
// moves with plain single steps from there.
type State struct {
	Step Step
	Mode models.EventMode
}

func NewState(mode models.EventMode) State {
	return State{Step: StepFirst, Mode: mode}
}

// Next advances one step, clamped at the last step. Online events skip
// the address step when leaving the first.
func (s State) Next() State {
	switch {
	case s.Step == StepFirst && s.Mode == models.EventModeOnline:
		s.Step = StepThird
	case s.Step < StepSixth:
		s.Step++
	}
	return s
}

// Previous steps back, clamped at the first step, mirroring the online
// skip when leaving the description step.
func (s State) Previous() State {
	switch {
	case s.Step == StepThird && s.Mode == models.EventModeOnline:
		s.Step = StepFirst
	case s.Step > StepFirst:
		s.Step--
	}
	return s
}

// SetMode records a mode change made on whatever step the user is on.
func (s State) SetMode(mode models.EventMode) State {
	s.Mode = mode
	return s
}

// CanSubmit reports whether the submit action is available; only the
// final summary step offers it.
func (s State) CanSubmit() bool {
	return s.Step == StepSixth
}
