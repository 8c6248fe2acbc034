package halting

import (
	"errors"
	"runtime"
	"testing"
)

func TestOppositeHalts(t *testing.T) {
	var asked []any
	predict := func(f Program, x any) (bool, error) {
		asked = append(asked, f(x))
		return true, nil
	}
	opposite := NewOpposite(predict, func() {
		t.Fatal("should not loop")
	})
	if ret := opposite(42); ret != false {
		t.Fatalf("got %v", ret)
	}
	// a plain value is fed as a program returning it
	if len(asked) != 1 || asked[0] != 42 {
		t.Fatalf("got %v", asked)
	}
}

func TestOppositeLoops(t *testing.T) {
	spins := 0
	done := make(chan struct{})
	opposite := NewOpposite(constant(false), func() {
		spins++
		if spins == 3 {
			close(done)
			runtime.Goexit()
		}
	})
	go opposite(opposite)
	<-done
	if spins != 3 {
		t.Fatalf("got %d", spins)
	}
}

func TestOppositePredictorError(t *testing.T) {
	defer func() {
		p := recover()
		err, ok := p.(error)
		if !ok || !errors.Is(err, ErrUndecidable) {
			t.Fatalf("got %v", p)
		}
	}()
	NewOpposite(WillFreeze, func() {})(nil)
}

func TestAsProgram(t *testing.T) {
	double := func(x any) any {
		return x.(int) * 2
	}
	if got := AsProgram(double)(21); got != 42 {
		t.Fatalf("got %v", got)
	}
	if got := AsProgram(Program(double))(1); got != 2 {
		t.Fatalf("got %v", got)
	}
	if got := AsProgram("foo")(nil); got != "foo" {
		t.Fatalf("got %v", got)
	}
}

func TestOutcomeString(t *testing.T) {
	if Halts.String() != "halts" || Freezes.String() != "freezes" {
		t.Fatal()
	}
	if Outcome(0).String() != "unknown" {
		t.Fatal()
	}
}
