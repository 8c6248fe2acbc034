package predictors

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aamini11/halting/halting"
	"go.starlark.net/starlark"
)

var (
	ErrRecursion   = errors.New("simulation too deep")
	ErrNoPredictor = errors.New("script does not define will_freeze")
	ErrNotBool     = errors.New("will_freeze must return a bool")
)

const entryName = "will_freeze"

// Script is a compiled Starlark file defining will_freeze(f, x).
type Script struct {
	path     string
	fn       starlark.Callable
	maxDepth int
}

// CompileScript runs the file once to collect will_freeze.
// src is passed to starlark.ExecFile; nil reads the file at path.
func CompileScript(path string, src any, maxDepth int) (*Script, error) {
	thread := &starlark.Thread{
		Name: path,
	}
	globals, err := starlark.ExecFile(thread, path, src, nil)
	if err != nil {
		return nil, err
	}
	// shared by every predictor of this script
	globals.Freeze()
	fn, ok := globals[entryName].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPredictor)
	}
	return &Script{
		path:     path,
		fn:       fn,
		maxDepth: maxDepth,
	}, nil
}

// Predictor returns a predictor with its own simulation depth. f is callable
// from the script, calling it runs f on the given value, nesting at most
// maxDepth deep. A predictor must not be used by two goroutines at once, a
// Script may.
func (s *Script) Predictor() halting.Predictor {
	sim := &simulation{
		maxDepth: s.maxDepth,
	}
	return func(f halting.Program, x any) (bool, error) {
		if sim.depth == 0 {
			sim.exceeded = false
		}
		thread := &starlark.Thread{
			Name: entryName,
		}
		ret, err := starlark.Call(thread, s.fn, starlark.Tuple{
			sim.value(f),
			sim.value(x),
		}, nil)
		if sim.exceeded {
			return false, fmt.Errorf("%s: %w", s.path, ErrRecursion)
		}
		if err != nil {
			return false, err
		}
		b, ok := ret.(starlark.Bool)
		if !ok {
			return false, fmt.Errorf("%s: %w, got %s", s.path, ErrNotBool, ret.Type())
		}
		return bool(b), nil
	}
}

// LoadScript compiles the file and returns one predictor of it.
func LoadScript(path string, src any, maxDepth int) (halting.Predictor, error) {
	script, err := CompileScript(path, src, maxDepth)
	if err != nil {
		return nil, err
	}
	return script.Predictor(), nil
}

// ScriptName is the registry name of a script file. It keeps the extension,
// so scripts never shadow the built-in predictors.
func ScriptName(path string) string {
	return filepath.Base(path)
}

type simulation struct {
	maxDepth int
	depth    int
	exceeded bool
}

func (s *simulation) value(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case halting.Program:
		return &programValue{
			sim:     s,
			program: v,
		}
	case bool:
		return starlark.Bool(v)
	case int:
		return starlark.MakeInt(v)
	case string:
		return starlark.String(v)
	}
	return starlark.String(fmt.Sprint(v))
}

func (s *simulation) goValue(v starlark.Value) any {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil
	case *programValue:
		return v.program
	case starlark.Bool:
		return bool(v)
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return int(i)
		}
	case starlark.String:
		return string(v)
	}
	return v.String()
}

type programValue struct {
	sim     *simulation
	program halting.Program
}

var _ starlark.Callable = new(programValue)

func (p *programValue) String() string {
	return "<program>"
}

func (p *programValue) Type() string {
	return "program"
}

func (p *programValue) Freeze() {}

func (p *programValue) Truth() starlark.Bool {
	return starlark.True
}

func (p *programValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: program")
}

func (p *programValue) Name() string {
	return "program"
}

func (p *programValue) CallInternal(thread *starlark.Thread, args starlark.Tuple, kwargs []starlark.Tuple) (ret starlark.Value, err error) {
	var input starlark.Value = starlark.None
	if err := starlark.UnpackPositionalArgs("program", args, kwargs, 0, &input); err != nil {
		return nil, err
	}

	sim := p.sim
	if sim.depth >= sim.maxDepth {
		sim.exceeded = true
		return nil, ErrRecursion
	}
	sim.depth++
	defer func() {
		sim.depth--
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()

	return sim.value(p.program(sim.goValue(input))), nil
}
