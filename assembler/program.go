package assembler

import (
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/asm51/hexfile"
	"github.com/ezrec/asm51/internal"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
)

const (
	FILL_BYTE = 0xff // Unprogrammed code memory.
)

// Program is an assembled program.
type Program struct {
	Units  []*Unit           // Units, in address order.
	Labels map[string]uint32 // Label addresses.
}

// Debug locates a code address in the program.
type Debug struct {
	*Unit
	Index int // Index of the addressed byte in the unit's code.
}

func newProgram(units []*Unit, labels map[string]*token.Label) (prog *Program) {
	prog = &Program{
		Units:  slices.Clone(units),
		Labels: make(map[string]uint32, len(labels)),
	}

	slices.SortStableFunc(prog.Units, func(a, b *Unit) int {
		return cmp.Compare(a.Point, b.Point)
	})

	for name, label := range labels {
		prog.Labels[name] = label.Address()
	}

	return
}

// check reports units that overlap, or that run past the end of code memory.
func (prog *Program) check(sink *problem.Sink) {
	var end uint32
	var last *Unit
	for _, unit := range prog.Units {
		if unit.Size() == 0 {
			continue
		}
		if last != nil && unit.Point < end {
			sink.Warnf(unit, "code at %#x overlaps code at %#x", unit.Point, last.Point)
		}
		if unit.Point+uint32(unit.Size()) > CODE_SIZE {
			sink.Errorf(unit, "code at %#x extends past 0xffff", unit.Point)
		}
		end = max(end, unit.Point+uint32(unit.Size()))
		last = unit
	}
}

// Debug returns the unit holding a code address. The unit is nil if the
// address holds no code.
func (prog *Program) Debug(addr uint32) (dbg Debug) {
	for _, unit := range prog.Units {
		if addr >= unit.Point && addr < unit.Point+uint32(len(unit.Code)) {
			dbg = Debug{
				Unit:  unit,
				Index: int(addr - unit.Point),
			}
			break
		}
	}

	return
}

// Codes iterates over all code bytes in address order.
func (prog *Program) Codes() iter.Seq2[uint32, byte] {
	seqs := make([]iter.Seq2[uint32, byte], 0, len(prog.Units))
	for _, unit := range prog.Units {
		seqs = append(seqs, unit.Codes())
	}
	return internal.Concat2(seqs...)
}

// Symbols iterates over the label names in sorted order.
func (prog *Program) Symbols() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(prog.Labels)))
}

// Image returns the code memory from address zero up to the end of the
// highest unit. Addresses without code hold FILL_BYTE; reserved space holds
// zero.
func (prog *Program) Image() (image []byte) {
	var extent uint32
	for _, unit := range prog.Units {
		extent = max(extent, unit.Point+uint32(unit.Size()))
	}
	extent = min(extent, CODE_SIZE)

	image = make([]byte, extent)
	for n := range image {
		image[n] = FILL_BYTE
	}

	for _, unit := range prog.Units {
		if unit.Data != nil && unit.Data.Directive == token.DIRECTIVE_DS {
			for n := range unit.Size() {
				addr := unit.Point + uint32(n)
				if addr < extent {
					image[addr] = 0
				}
			}
		}
	}

	for addr, code := range prog.Codes() {
		if addr < extent {
			image[addr] = code
		}
	}

	return
}

// WriteHex writes the program as Intel HEX, one unit at a time.
func (prog *Program) WriteHex(w io.Writer, size int, mode hexfile.Mode) (err error) {
	hw, err := hexfile.NewWriter(w, size, mode)
	if err != nil {
		return
	}

	for _, unit := range prog.Units {
		if len(unit.Code) == 0 {
			continue
		}
		err = hw.Write(unit.Point, unit.Code)
		if err != nil {
			return
		}
	}

	return hw.Close()
}
