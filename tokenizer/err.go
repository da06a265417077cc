package tokenizer

import (
	"github.com/ezrec/asm51/translate"
)

var f = translate.From

// ErrRadix is a malformed numeric literal for its radix.
type ErrRadix struct {
	Text  string
	Radix Radix
}

func (err *ErrRadix) Error() string {
	return f("'%v' is not a valid %v number", err.Text, err.Radix.String())
}
