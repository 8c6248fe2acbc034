package cmds

// Var defines `name <value>` to set the returned variable, and `name.` to reset it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
