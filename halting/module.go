package halting

import (
	"github.com/aamini11/halting/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Spin(
	logger logs.Logger,
) Spin {
	return func() {
		logger.Debug("infinite loop")
	}
}
