package tokenizer

import (
	"regexp"
	"strings"

	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/sfr"
	"github.com/ezrec/asm51/token"
)

// classifier builds an operand from a matched fragment. It returns nil after
// reporting a problem.
type classifier struct {
	name    string
	pattern *regexp.Regexp
	build   func(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand
}

// classifiers are tried in order; the first matching pattern decides the
// operand kind.
var classifiers = []classifier{
	{"constant", regexp.MustCompile(`^#(.+)$`), classifyConstant},
	{"bit address", regexp.MustCompile(`^([a-z0-9_?]+)\.([0-9a-z]+)$`), classifyBitAddress},
	{"address", regexp.MustCompile(`^[0-9][0-9a-z]*$`), classifyAddress},
	{"negated address", regexp.MustCompile(`^/(.+)$`), classifyNegatedAddress},
	{"address offset", regexp.MustCompile(`^([+-])([0-9][0-9a-z]*)$`), classifyAddressOffset},
	{"symbol", reSymbol, classifySymbol},
	{"indirect symbol", regexp.MustCompile(`^@(.+)$`), classifyIndirect},
}

// Classify converts an operand fragment (whitespace removed, case folded)
// into an operand token.
func Classify(text string, pos token.Pos, sink *problem.Sink) *token.Operand {
	for _, cl := range classifiers {
		match := cl.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		return cl.build(text, match, pos, sink)
	}

	sink.Errorf(fragment{text, pos}, "unrecognized operand '%v'", text)
	return nil
}

// number parses a literal and checks it against [0, max].
func number(text string, max int64, pos token.Pos, sink *problem.Sink) (value int, ok bool) {
	v64, err := ParseNumber(text)
	if err != nil {
		sink.Errorf(fragment{text, pos}, "%v", err.Error())
		return
	}
	if v64 < 0 || v64 > max {
		sink.Errorf(fragment{text, pos}, "'%v' out of range %v..%#x", text, 0, max)
		return
	}

	return int(v64), true
}

func classifyConstant(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	inner := match[1]

	switch {
	case IsNumber(inner):
		value, ok := number(inner, CONSTANT_MAX, pos, sink)
		if !ok {
			return nil
		}
		return token.NewConstant(text, value, pos)
	case reSymbol.MatchString(inner) && !token.IsReserved(inner):
		if addr, ok := sfr.Lookup(inner); ok {
			return token.NewConstant(text, addr, pos)
		}
		return token.NewSymbolConstant(text, inner, pos)
	}

	sink.Errorf(fragment{text, pos}, "invalid constant '%v'", text)
	return nil
}

// bitAddress folds 'byte.bit' where byte is a literal or an SFR name.
func bitAddress(text string, byteText string, bitText string, pos token.Pos, sink *problem.Sink) (index int, ok bool) {
	var addr int
	switch {
	case IsNumber(byteText):
		addr, ok = number(byteText, BYTE_MAX, pos, sink)
		if !ok {
			return
		}
	default:
		addr, ok = sfr.Byte[byteText]
		if !ok {
			sink.Errorf(fragment{text, pos}, "'%v' is not a bit addressable register", byteText)
			return
		}
	}

	if !IsNumber(bitText) {
		sink.Errorf(fragment{text, pos}, "bit number '%v' is not a number", bitText)
		ok = false
		return
	}
	v64, err := ParseNumber(bitText)
	if err != nil {
		sink.Errorf(fragment{text, pos}, "%v", err.Error())
		ok = false
		return
	}
	if v64 < 0 || v64 > BIT_MAX {
		sink.Errorf(fragment{text, pos}, "bit number '%v' out of range 0..7", bitText)
		ok = false
		return
	}

	index, err = sfr.BitAddress(addr, int(v64))
	if err != nil {
		sink.Errorf(fragment{text, pos}, "'%v': %v", text, err.Error())
		ok = false
		return
	}

	return
}

func classifyBitAddress(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	index, ok := bitAddress(text, match[1], match[2], pos, sink)
	if !ok {
		return nil
	}
	return token.NewBitAddress(text, index, pos)
}

func classifyAddress(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	value, ok := number(text, ADDRESS_MAX, pos, sink)
	if !ok {
		return nil
	}
	return token.NewAddress(text, value, pos)
}

func classifyNegatedAddress(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	inner := match[1]

	if byteText, bitText, found := strings.Cut(inner, "."); found {
		index, ok := bitAddress(text, byteText, bitText, pos, sink)
		if !ok {
			return nil
		}
		return token.NewNegatedAddress(text, index, pos)
	}

	if IsNumber(inner) {
		value, ok := number(inner, BYTE_MAX, pos, sink)
		if !ok {
			return nil
		}
		return token.NewNegatedAddress(text, value, pos)
	}

	if addr, ok := sfr.Bit[inner]; ok {
		return token.NewNegatedAddress(text, addr, pos)
	}

	sink.Errorf(fragment{text, pos}, "'%v' is not a bit address", inner)
	return nil
}

func classifyAddressOffset(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	value, ok := number(match[2], ADDRESS_MAX, pos, sink)
	if !ok {
		return nil
	}
	if match[1] == "-" {
		value = -value
	}
	return token.NewAddressOffset(text, value, pos)
}

func classifySymbol(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	if token.IsReserved(text) {
		return token.NewName(text, pos)
	}
	if addr, ok := sfr.Byte[text]; ok {
		return token.NewByteAddress(text, addr, pos)
	}
	if addr, ok := sfr.Bit[text]; ok {
		return token.NewBitAddress(text, addr, pos)
	}
	return token.NewName(text, pos)
}

func classifyIndirect(text string, match []string, pos token.Pos, sink *problem.Sink) *token.Operand {
	if !token.IsIndirect(match[1]) {
		sink.Errorf(fragment{text, pos}, "invalid indirect operand '%v'", text)
		return nil
	}
	return token.NewIndirect(text, pos)
}
