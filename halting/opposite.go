package halting

import "fmt"

// Spin is one iteration of the counter-example's infinite loop.
type Spin func()

// NewOpposite builds the program that contradicts predict. Applied to f, it
// returns false if predict says f(f) freezes, and otherwise calls spin forever.
func NewOpposite(predict Predictor, spin Spin) Program {
	return func(input any) any {
		f := AsProgram(input)
		freezes, err := predict(f, f)
		if err != nil {
			panic(fmt.Errorf("opposite: %w", err))
		}
		if freezes {
			return false
		}
		for {
			spin()
		}
	}
}
