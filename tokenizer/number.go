package tokenizer

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Radix of a numeric literal.
type Radix int

//go:generate go tool stringer -linecomment -type=Radix
const (
	RADIX_BINARY      = Radix(2)  // binary
	RADIX_OCTAL       = Radix(8)  // octal
	RADIX_DECIMAL     = Radix(10) // decimal
	RADIX_HEXADECIMAL = Radix(16) // hexadecimal
)

// Numeric bounds per operand context.
const (
	CONSTANT_MAX = 0xffff
	ADDRESS_MAX  = 0xffff
	BYTE_MAX     = 0xff
	BIT_MAX      = 7
)

// radixSuffix maps literal suffix letters to their radix.
var radixSuffix = map[byte]Radix{
	'b': RADIX_BINARY,
	'o': RADIX_OCTAL,
	'q': RADIX_OCTAL,
	'd': RADIX_DECIMAL,
	'h': RADIX_HEXADECIMAL,
}

// IsNumber is true if the text lexically looks like a numeric literal.
func IsNumber(text string) bool {
	return len(text) > 0 && text[0] >= '0' && text[0] <= '9'
}

// ParseNumber decodes a numeric literal. The radix is selected by a '0x'
// prefix, or by a 'b', 'o', 'q', 'd' or 'h' suffix; decimal otherwise.
// Values that do not fit in 64 bits are returned as math.MaxInt64, so that
// any bounds check fails.
func ParseNumber(text string) (value int64, err error) {
	digits := strings.ToLower(text)
	radix := RADIX_DECIMAL

	switch {
	case strings.HasPrefix(digits, "0x"):
		radix = RADIX_HEXADECIMAL
		digits = digits[2:]
	case len(digits) > 1:
		if r, ok := radixSuffix[digits[len(digits)-1]]; ok {
			radix = r
			digits = digits[:len(digits)-1]
		}
	}

	if len(digits) == 0 {
		err = &ErrRadix{Text: text, Radix: radix}
		return
	}

	for _, c := range digits {
		if !validDigit(c, radix) {
			err = &ErrRadix{Text: text, Radix: radix}
			return
		}
	}

	value, err = strconv.ParseInt(digits, int(radix), 64)
	if errors.Is(err, strconv.ErrRange) {
		value = math.MaxInt64
		err = nil
	}

	return
}

func validDigit(c rune, radix Radix) bool {
	var n int
	switch {
	case c >= '0' && c <= '9':
		n = int(c - '0')
	case c >= 'a' && c <= 'z':
		n = int(c-'a') + 10
	default:
		return false
	}
	return n < int(radix)
}
