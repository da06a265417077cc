package token

import (
	"errors"

	"github.com/ezrec/asm51/translate"
)

var f = translate.From

var (
	ErrNotRegister = errors.New(f("operand is not a register"))
)

type ErrOriginSet string

func (err ErrOriginSet) Error() string {
	return f("label %v: origin already set", string(err))
}

type ErrNoBank string

func (err ErrNoBank) Error() string {
	return f("register %v has no direct address without a selected register bank", string(err))
}
