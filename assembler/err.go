package assembler

import (
	"github.com/ezrec/asm51/translate"
)

var f = translate.From

type ErrNoConvergence int

func (err ErrNoConvergence) Error() string {
	return f("code layout did not converge after %v passes", int(err))
}
