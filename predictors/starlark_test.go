package predictors

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aamini11/halting/halting"
	"github.com/aamini11/halting/modes"
	"github.com/reusee/dscope"
	"go.uber.org/goleak"
)

func refuter(t *testing.T) (ret halting.Refuter) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		refuter halting.Refuter,
	) {
		ret = refuter
	})
	return
}

func TestLoadScript(t *testing.T) {
	predict, err := LoadScript("testdata/parity.star", nil, 8)
	if err != nil {
		t.Fatal(err)
	}
	identity := halting.Program(func(x any) any {
		return x
	})
	for x, want := range map[any]bool{
		2:     true,
		3:     false,
		"foo": false,
	} {
		got, err := predict(identity, x)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%v: got %v", x, got)
		}
	}
	got, err := predict(identity, identity)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("programs should freeze")
	}
}

func TestLoadScriptSource(t *testing.T) {
	predict, err := LoadScript("inline.star", `
def will_freeze(f, x):
    return f(x) == "loop"
`, 8)
	if err != nil {
		t.Fatal(err)
	}
	echo := halting.Program(func(x any) any {
		return x
	})
	if got, err := predict(echo, "loop"); err != nil || !got {
		t.Fatalf("got %v %v", got, err)
	}
	if got, err := predict(echo, 1); err != nil || got {
		t.Fatalf("got %v %v", got, err)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript("testdata/empty.star", nil, 8); !errors.Is(err, ErrNoPredictor) {
		t.Fatalf("got %v", err)
	}
	if _, err := LoadScript("testdata/none.star", nil, 8); err == nil {
		t.Fatal("should error")
	}
	if _, err := LoadScript("syntax.star", "def will_freeze(:", 8); err == nil {
		t.Fatal("should error")
	}

	predict, err := LoadScript("testdata/not_bool.star", nil, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := predict(halting.AsProgram(nil), nil); !errors.Is(err, ErrNotBool) {
		t.Fatalf("got %v", err)
	}
}

func TestRefuteScripts(t *testing.T) {
	defer goleak.VerifyNone(t)
	refuter := refuter(t)

	for _, c := range []struct {
		path      string
		predicted halting.Outcome
	}{
		{"testdata/always_halts.star", halting.Halts},
		{"testdata/parity.star", halting.Freezes},
	} {
		predict, err := LoadScript(c.path, nil, 8)
		if err != nil {
			t.Fatal(err)
		}
		contradiction, err := refuter.Refute(context.Background(), ScriptName(c.path), predict)
		if err != nil {
			t.Fatal(err)
		}
		if contradiction.Predicted != c.predicted {
			t.Fatalf("%s: got %v", c.path, contradiction.Predicted)
		}
		if contradiction.Observed == contradiction.Predicted {
			t.Fatalf("%s: no contradiction", c.path)
		}
	}
}

func TestRefuteSimulatingScript(t *testing.T) {
	defer goleak.VerifyNone(t)
	refuter := refuter(t)

	predict, err := LoadScript("testdata/simulate.star", nil, 16)
	if err != nil {
		t.Fatal(err)
	}
	_, err = refuter.Refute(context.Background(), "simulate", predict)
	if !errors.Is(err, ErrRecursion) {
		t.Fatalf("got %v", err)
	}

	// the depth is restored after a failed run
	echo := halting.Program(func(x any) any {
		return x
	})
	if got, err := predict(echo, 1); err != nil || got {
		t.Fatalf("got %v %v", got, err)
	}
}

func TestRefutePeekingScript(t *testing.T) {
	defer goleak.VerifyNone(t)
	refuter := refuter(t)

	predict, err := LoadScript("testdata/peek.star", nil, 8)
	if err != nil {
		t.Fatal(err)
	}
	_, err = refuter.Refute(context.Background(), "peek", predict)
	if !errors.Is(err, halting.ErrPredictorFroze) {
		t.Fatalf("got %v", err)
	}
}

func TestScriptName(t *testing.T) {
	if got := ScriptName("testdata/parity.star"); got != "parity.star" {
		t.Fatalf("got %s", got)
	}
}

func TestScriptConcurrentPredictors(t *testing.T) {
	defer goleak.VerifyNone(t)
	refuter := refuter(t)

	script, err := CompileScript("testdata/simulate.star", nil, 8)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		predict := script.Predictor()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = refuter.Refute(context.Background(), "simulate", predict)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if !errors.Is(err, ErrRecursion) {
			t.Fatalf("got %v", err)
		}
	}

	// each predictor starts from zero depth
	echo := halting.Program(func(x any) any {
		return x
	})
	if got, err := script.Predictor()(echo, 2); err != nil || got {
		t.Fatalf("got %v %v", got, err)
	}
}
