package preprocess

import (
	"github.com/ezrec/asm51/translate"
)

var f = translate.From

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not an integer expression", string(err))
}
