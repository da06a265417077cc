package assembler

import (
	"iter"

	"github.com/ezrec/asm51/config"
	"github.com/ezrec/asm51/mnemonic"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
)

// Unit is one instruction, or one raw data directive, and its encoding.
type Unit struct {
	Labels   []*token.Label   // Labels addressing this unit.
	Name     *token.Mnemonic  // Instruction name, if an instruction.
	Operands []*token.Operand // Instruction operands.
	Data     *token.Directive // Raw data directive, if data.
	Origin   uint32           // Origin of the unit's segment.
	Segment  int              // Segment number; each .org starts a new one.
	Point    uint32           // Code address of the unit.
	Code     []byte           // Encoded bytes; nil when reserved or failed.

	mnemonic *mnemonic.Mnemonic
	size     int
	compiled bool
	static   bool
	problems *problem.Sink
}

// Size is the number of code bytes the unit occupies. A unit that fails to
// encode keeps the size of its last good encoding.
func (unit *Unit) Size() int {
	return unit.size
}

// IsStatic is true if compiling the unit again cannot change it.
func (unit *Unit) IsStatic() bool {
	return unit.compiled && unit.static
}

// Problems reported by the most recent compile.
func (unit *Unit) Problems() *problem.Sink {
	return unit.problems
}

// Path of the unit's source.
func (unit *Unit) Path() string {
	switch {
	case unit.Name != nil:
		return unit.Name.Path()
	case unit.Data != nil:
		return unit.Data.Path()
	}
	return ""
}

// Line of the unit's source.
func (unit *Unit) Line() int {
	switch {
	case unit.Name != nil:
		return unit.Name.Line()
	case unit.Data != nil:
		return unit.Data.Line()
	}
	return 0
}

func (unit *Unit) String() string {
	switch {
	case unit.Name != nil:
		text := unit.Name.Value()
		for n, op := range unit.Operands {
			if n == 0 {
				text += " "
			} else {
				text += ", "
			}
			text += op.Value()
		}
		return text
	case unit.Data != nil:
		return unit.Data.String()
	}
	return ""
}

// references is true if any operand refers to a symbol.
func (unit *Unit) references() bool {
	for _, op := range unit.Operands {
		if op.Reference() {
			return true
		}
	}
	return false
}

// Compile encodes the unit at its current point, and returns the change in
// its size.
func (unit *Unit) Compile(cfg *config.Config) (delta int) {
	if unit.IsStatic() {
		return
	}

	old := unit.size
	sink := &problem.Sink{Path: unit.Path()}

	switch {
	case unit.Data != nil:
		if unit.Data.Directive == token.DIRECTIVE_DS {
			unit.Code = nil
			unit.size = unit.Data.Number
		} else {
			unit.Code = unit.Data.Bytes()
			unit.size = len(unit.Code)
		}
		unit.static = true
	case unit.mnemonic != nil && !unit.Name.Broken:
		env := &mnemonic.Env{Config: cfg, Sink: sink}
		unit.Code = unit.mnemonic.Encode(env, unit.Point, unit.Name, unit.Operands)
		if len(unit.Code) != 0 {
			unit.size = len(unit.Code)
		}
		unit.static = !unit.mnemonic.PositionSensitive && !unit.references()
	default:
		// Broken or unknown instruction, already reported.
		unit.static = true
	}

	unit.compiled = true
	unit.problems = sink

	delta = unit.size - old
	return
}

// Codes iterates over the unit's code bytes and their addresses.
func (unit *Unit) Codes() iter.Seq2[uint32, byte] {
	return func(yield func(addr uint32, code byte) bool) {
		for n, code := range unit.Code {
			if !yield(unit.Point+uint32(n), code) {
				return
			}
		}
	}
}
