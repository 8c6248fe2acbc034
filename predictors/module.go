package predictors

import (
	"github.com/aamini11/halting/halting"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Halting halting.Module
}
