package halting

// WillFreeze is the predictor that cannot be written. It has the shape of a
// Predictor so that it can be handed to Refute, and always returns ErrUndecidable.
func WillFreeze(f Program, x any) (bool, error) {
	return false, ErrUndecidable
}

var _ Predictor = WillFreeze
