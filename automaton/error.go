package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned by DFA.Step when the given state or letter
// is out of range.
var ErrInvalidState = errors.New("automaton: invalid state or letter")

// StepError carries the offending state/letter, following the teacher's
// sentinel-plus-context-wrapper error pair (nfa/error.go's CompileError /
// BuildError).
type StepError struct {
	State  int
	Letter int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("automaton: step(state=%d, letter=%d): %v", e.State, e.Letter, ErrInvalidState)
}

func (e *StepError) Unwrap() error {
	return ErrInvalidState
}
