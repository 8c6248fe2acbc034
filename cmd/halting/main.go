package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/aamini11/halting/cmds"
	"github.com/aamini11/halting/configs"
	"github.com/aamini11/halting/halting"
	"github.com/aamini11/halting/logs"
	"github.com/aamini11/halting/modes"
	"github.com/aamini11/halting/predictors"
	"github.com/reusee/dscope"
)

var (
	configFiles = cmds.Collect[string]("-config")
	names       = cmds.Collect[string]("-predictor")
	scripts     = cmds.Collect[string]("-script")
	maxDepth    = cmds.Var[int]("-max-depth")
)

func main() {
	cmds.Execute(os.Args[1:])

	config, err := configs.Load(*configFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	config.Predictors = append(config.Predictors, *names...)
	config.Scripts = append(config.Scripts, *scripts...)
	if *maxDepth > 0 {
		config.MaxDepth = *maxDepth
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dscope.New(
		new(predictors.Module),
		modes.ForProduction(),
	).Call(func(
		registry *predictors.Registry,
		refuter halting.Refuter,
		logger logs.Logger,
	) {
		if err := run(ctx, os.Stdout, config, registry, refuter); err != nil {
			logger.Error("refute", "error", err)
			cancel()
			os.Exit(1)
		}
	})
}

func run(
	ctx context.Context,
	w io.Writer,
	config configs.Config,
	registry *predictors.Registry,
	refuter halting.Refuter,
) error {
	selected := config.Predictors
	for _, path := range config.Scripts {
		predict, err := predictors.LoadScript(path, nil, config.MaxDepth)
		if err != nil {
			return err
		}
		name := predictors.ScriptName(path)
		if err := registry.Register(name, predict); err != nil {
			return err
		}
		selected = append(selected, name)
	}
	if len(selected) == 0 {
		selected = registry.Names()
	}

	for _, name := range selected {
		predict, err := registry.Get(name)
		if err != nil {
			return err
		}
		contradiction, err := refuter.Refute(ctx, name, predict)
		switch {
		case err == nil:
			fmt.Fprintf(w, "%s: %v\n", name, contradiction)
		case errors.Is(err, context.Canceled):
			return err
		case errors.Is(err, halting.ErrUndecidable):
			fmt.Fprintf(w, "%s: undecidable\n", name)
		default:
			// a predictor that never answers is wrong too
			fmt.Fprintf(w, "%s: no answer: %v\n", name, err)
		}
	}
	return nil
}
