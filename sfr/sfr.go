// Package sfr holds the predefined special function register symbols of the
// 8051 and the bit-address arithmetic of its bit-addressable memory.
package sfr

import (
	"errors"

	"github.com/ezrec/asm51/translate"
)

var f = translate.From

const (
	BIT_RAM_FIRST = 0x20 // First bit-addressable internal RAM byte.
	BIT_RAM_LAST  = 0x2f // Last bit-addressable internal RAM byte.
	SFR_FIRST     = 0x80 // First SFR address.
	BIT_MAXIMUM   = 7    // Highest bit number within a byte.

	ACC = 0xe0 // Accumulator, as a direct address.
	CY  = 0xd7 // Carry flag, as a bit address.
)

var (
	ErrNotBitAddressable = errors.New(f("byte is not bit addressable"))
	ErrBitRange          = errors.New(f("bit number out of range 0..7"))
)

// Byte maps SFR names to their direct addresses.
var Byte = map[string]int{
	"p0":   0x80,
	"sp":   0x81,
	"dpl":  0x82,
	"dph":  0x83,
	"pcon": 0x87,
	"tcon": 0x88,
	"tmod": 0x89,
	"tl0":  0x8a,
	"tl1":  0x8b,
	"th0":  0x8c,
	"th1":  0x8d,
	"p1":   0x90,
	"scon": 0x98,
	"sbuf": 0x99,
	"p2":   0xa0,
	"ie":   0xa8,
	"p3":   0xb0,
	"ip":   0xb8,
	"psw":  0xd0,
	"acc":  ACC,
	"b":    0xf0,
}

// Bit maps SFR bit names to their bit addresses.
var Bit = map[string]int{
	// TCON
	"it0": 0x88,
	"ie0": 0x89,
	"it1": 0x8a,
	"ie1": 0x8b,
	"tr0": 0x8c,
	"tf0": 0x8d,
	"tr1": 0x8e,
	"tf1": 0x8f,
	// SCON
	"ri":  0x98,
	"ti":  0x99,
	"rb8": 0x9a,
	"tb8": 0x9b,
	"ren": 0x9c,
	"sm2": 0x9d,
	"sm1": 0x9e,
	"sm0": 0x9f,
	// IE
	"ex0": 0xa8,
	"et0": 0xa9,
	"ex1": 0xaa,
	"et1": 0xab,
	"es":  0xac,
	"ea":  0xaf,
	// IP
	"px0": 0xb8,
	"pt0": 0xb9,
	"px1": 0xba,
	"pt1": 0xbb,
	"ps":  0xbc,
	// PSW
	"p":   0xd0,
	"ov":  0xd2,
	"rs0": 0xd3,
	"rs1": 0xd4,
	"f0":  0xd5,
	"ac":  0xd6,
	"cy":  CY,
}

// Lookup returns the address of a byte or bit SFR name.
func Lookup(name string) (addr int, ok bool) {
	addr, ok = Byte[name]
	if ok {
		return
	}
	addr, ok = Bit[name]
	return
}

// BitAddressable is true for the internal RAM bytes 0x20..0x2f and for the
// SFRs whose address is a multiple of 8.
func BitAddressable(addr int) bool {
	switch {
	case addr >= BIT_RAM_FIRST && addr <= BIT_RAM_LAST:
		return true
	case addr >= SFR_FIRST && addr <= 0xff && addr%8 == 0:
		return true
	}
	return false
}

// BitAddress folds a byte address and a bit number into a flat bit index.
func BitAddress(addr int, bit int) (index int, err error) {
	if bit < 0 || bit > BIT_MAXIMUM {
		err = ErrBitRange
		return
	}
	if !BitAddressable(addr) {
		err = ErrNotBitAddressable
		return
	}

	if addr <= BIT_RAM_LAST {
		index = (addr-BIT_RAM_FIRST)*8 + bit
	} else {
		index = addr + bit
	}

	return
}
