package predictors

import "github.com/aamini11/halting/halting"

func AlwaysHalts(halting.Program, any) (bool, error) {
	return false, nil
}

func AlwaysFreezes(halting.Program, any) (bool, error) {
	return true, nil
}

// Parity looks at the input: even numbers and programs freeze, anything else halts.
func Parity(f halting.Program, x any) (bool, error) {
	switch x := x.(type) {
	case int:
		return x%2 == 0, nil
	case halting.Program:
		return true, nil
	}
	return false, nil
}

var builtins = []struct {
	name    string
	predict halting.Predictor
}{
	{"always-halts", AlwaysHalts},
	{"always-freezes", AlwaysFreezes},
	{"parity", Parity},
	{"will-freeze", halting.WillFreeze},
}
