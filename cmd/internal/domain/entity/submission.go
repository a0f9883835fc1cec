package entity

import "fmt"

type FormState string

const (
	StateIdle       FormState = "IDLE"
	StateValidating FormState = "VALIDATING"
	StateSubmitting FormState = "SUBMITTING"
	StateSucceeded  FormState = "SUCCEEDED"
	StateFailed     FormState = "FAILED"
)

// formTransitions lists, for every state, the states it may move to.
// Succeeded and Failed go back to Idle on the next edit.
var formTransitions = map[FormState][]FormState{
	StateIdle:       {StateValidating},
	StateValidating: {StateIdle, StateSubmitting},
	StateSubmitting: {StateSucceeded, StateFailed},
	StateSucceeded:  {StateIdle},
	StateFailed:     {StateIdle},
}

func (s FormState) CanTransition(to FormState) bool {
	for _, next := range formTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Submission is the result of one press of the submit button: the path taken
// through the form states, the field errors (if any) and the outcome of the
// remote call (if one was made).
type Submission struct {
	Token   string
	Path    []FormState
	Errors  map[string]string
	Outcome *Outcome
}

func NewSubmission(token string) *Submission {
	return &Submission{
		Token: token,
		Path:  []FormState{StateIdle},
	}
}

func (s *Submission) State() FormState {
	return s.Path[len(s.Path)-1]
}

// Advance moves the submission to the given state, refusing transitions the
// form does not allow.
func (s *Submission) Advance(to FormState) error {
	from := s.State()
	if !from.CanTransition(to) {
		return fmt.Errorf("invalid form transition %s -> %s", from, to)
	}
	s.Path = append(s.Path, to)
	return nil
}

// Notification returns the toast to show for this submission, nil when the
// attempt ended without one.
func (s *Submission) Notification() *Notification {
	if s.Outcome == nil {
		return nil
	}
	return s.Outcome.Notification
}
