package halting

// Program may be applied to any value, including another Program.
type Program func(input any) any

// Predictor reports whether f(x) would run forever.
// A non-nil error means the predictor gave no answer.
type Predictor func(f Program, x any) (freezes bool, err error)

// AsProgram lets non-program values be fed where a Program is expected.
// A value that is not a function becomes a program returning that value.
func AsProgram(v any) Program {
	switch v := v.(type) {
	case Program:
		return v
	case func(any) any:
		return v
	}
	return func(any) any {
		return v
	}
}

type Outcome uint8

const (
	Halts Outcome = iota + 1
	Freezes
)

func outcomeOf(freezes bool) Outcome {
	if freezes {
		return Freezes
	}
	return Halts
}

func (o Outcome) String() string {
	switch o {
	case Halts:
		return "halts"
	case Freezes:
		return "freezes"
	}
	return "unknown"
}
