package hexfile

import (
	"github.com/ezrec/asm51/translate"
)

var f = translate.From

type ErrRecordSize int

func (err ErrRecordSize) Error() string {
	return f("record size %v out of range 1..255", int(err))
}

type ErrAddressRange uint32

func (err ErrAddressRange) Error() string {
	return f("record at %#x extends past 0xffff", uint32(err))
}
