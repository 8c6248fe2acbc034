package configs

import (
	"errors"
)

// First returns the zero value if no file sets path.
func First[T any](loader Loader, path string) (T, error) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, nil
		}
		return value, err
	}
	return value, nil
}
