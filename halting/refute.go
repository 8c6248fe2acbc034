package halting

import (
	"context"
	"fmt"
	"runtime"

	"github.com/aamini11/halting/logs"
)

// Contradiction is the evidence that a predictor is wrong about opposite(opposite).
type Contradiction struct {
	Predictor string
	Predicted Outcome
	Observed  Outcome
	// Result is what opposite(opposite) returned, if it halted.
	Result any
}

var _ error = new(Contradiction)

func (c *Contradiction) Error() string {
	return fmt.Sprintf(
		"%s predicted that opposite(opposite) %s, but it %s",
		c.Predictor,
		c.Predicted,
		c.Observed,
	)
}

type Refuter struct {
	Logger logs.Logger
	Spin   Spin
}

func (Module) Refuter(
	logger logs.Logger,
	spin Spin,
) Refuter {
	return Refuter{
		Logger: logger,
		Spin:   spin,
	}
}

type refutation struct {
	running   bool
	predicted Outcome
	observed  Outcome
	result    any
	err       error
}

// Refute asks predict about opposite(opposite) and then runs it.
//
// The run happens on its own goroutine. Reaching the first iteration of the
// loop is enough to observe Freezes, since the loop has no exit; the goroutine
// is then unwound with runtime.Goexit. Nothing is timed or counted.
// Predictors must be deterministic and must not run their input without bound.
func (r Refuter) Refute(ctx context.Context, name string, predict Predictor) (*Contradiction, error) {
	ctx = logs.WithCase(ctx, logs.Case(name))

	done := make(chan *refutation, 1)
	go func() {
		res := new(refutation)
		defer func() {
			if p := recover(); p != nil {
				res.err = panicError(p)
			}
			done <- res
		}()

		opposite := NewOpposite(predict, func() {
			if r.Spin != nil {
				r.Spin()
			}
			if !res.running {
				res.err = ErrPredictorFroze
			} else {
				res.observed = Freezes
			}
			runtime.Goexit()
		})

		freezes, err := predict(opposite, opposite)
		if err != nil {
			res.err = err
			return
		}
		res.predicted = outcomeOf(freezes)
		r.Logger.DebugContext(ctx, "predicted", "outcome", res.predicted)

		res.running = true
		res.result = opposite(opposite)
		res.observed = Halts
	}()

	var res *refutation
	select {
	case res = <-done:
	case <-ctx.Done():
		return nil, logs.WrapCase(ctx, ctx.Err())
	}

	if res.err != nil {
		return nil, logs.WrapCase(ctx, res.err)
	}
	switch {
	case res.observed == 0:
		return nil, logs.WrapCase(ctx, ErrNoOutcome)
	case res.observed == res.predicted:
		return nil, logs.WrapCase(ctx, ErrInconsistent)
	}

	contradiction := &Contradiction{
		Predictor: name,
		Predicted: res.predicted,
		Observed:  res.observed,
		Result:    res.result,
	}
	r.Logger.InfoContext(ctx, "refuted",
		"predicted", contradiction.Predicted,
		"observed", contradiction.Observed,
	)
	return contradiction, nil
}
