package logs

import (
	"context"
	"fmt"
)

// Case names the predictor under examination.
type Case string

type caseKey struct{}

func WithCase(ctx context.Context, c Case) context.Context {
	return context.WithValue(ctx, caseKey{}, c)
}

func CaseOf(ctx context.Context) Case {
	c, _ := ctx.Value(caseKey{}).(Case)
	return c
}

func WrapCase(ctx context.Context, err error) error {
	c := CaseOf(ctx)
	if c == "" || err == nil {
		return err
	}
	return fmt.Errorf("%w (case: %s)", err, c)
}
