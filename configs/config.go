package configs

const Schema = `
predictors?: [...string]
scripts?: [...string]
max_depth?: int & >0
`

const DefaultMaxDepth = 64

type Config struct {
	// Predictors are registry names, Scripts are starlark predictor files.
	Predictors []string
	Scripts    []string
	MaxDepth   int
}

// Load merges the files: lists are concatenated in file order, scalars come
// from the first file that sets them.
func Load(filePaths []string) (config Config, err error) {
	loader := NewLoader(filePaths, Schema)

	for _, item := range []struct {
		path   string
		target *[]string
	}{
		{"predictors", &config.Predictors},
		{"scripts", &config.Scripts},
	} {
		for list, err := range All[[]string](loader, item.path) {
			if err != nil {
				return config, err
			}
			*item.target = append(*item.target, list...)
		}
	}

	// the schema rules out zero, so zero means unset
	config.MaxDepth, err = First[int](loader, "max_depth")
	if err != nil {
		return config, err
	}
	if config.MaxDepth == 0 {
		config.MaxDepth = DefaultMaxDepth
	}

	return config, nil
}
