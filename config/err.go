package config

import (
	"github.com/ezrec/asm51/translate"
)

var f = translate.From

type ErrSettingInvalid string

func (err ErrSettingInvalid) Error() string {
	return f("'%v' is not one of error, warn or ignore", string(err))
}

type ErrSwitchUnknown string

func (err ErrSwitchUnknown) Error() string {
	return f("unknown switch '%v'", string(err))
}

type ErrBankInvalid string

func (err ErrBankInvalid) Error() string {
	return f("register bank '%v' is not 0..3 or unset", string(err))
}

type ErrValueInvalid struct {
	Switch string
	Value  string
}

func (err ErrValueInvalid) Error() string {
	return f("switch %v: invalid value '%v'", err.Switch, err.Value)
}

type ErrLoad struct {
	Err error
}

func (err *ErrLoad) Error() string {
	return f("config: %v", err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
