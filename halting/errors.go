package halting

import (
	"errors"
	"fmt"
)

var (
	ErrUndecidable    = errors.New("no procedure decides whether an arbitrary program freezes")
	ErrPredictorFroze = errors.New("predictor ran the program into its infinite loop")
	ErrInconsistent   = errors.New("predictor answered the same question differently")
	ErrNoOutcome      = errors.New("program stopped without returning or looping")
)

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", p)
}
