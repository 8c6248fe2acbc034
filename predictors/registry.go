package predictors

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aamini11/halting/halting"
)

var (
	ErrUnknownPredictor = errors.New("unknown predictor")
	ErrDuplicated       = errors.New("duplicated predictor")
)

// Registry keeps predictors in registration order.
type Registry struct {
	names      []string
	predictors map[string]halting.Predictor
}

func NewRegistry() *Registry {
	return &Registry{
		predictors: make(map[string]halting.Predictor),
	}
}

func (r *Registry) Register(name string, predict halting.Predictor) error {
	if _, ok := r.predictors[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicated, name)
	}
	r.names = append(r.names, name)
	r.predictors[name] = predict
	return nil
}

func (r *Registry) Get(name string) (halting.Predictor, error) {
	predict, ok := r.predictors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPredictor, name)
	}
	return predict, nil
}

func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func (Module) Registry() *Registry {
	registry := NewRegistry()
	for _, builtin := range builtins {
		if err := registry.Register(builtin.name, builtin.predict); err != nil {
			panic(err)
		}
	}
	return registry
}
