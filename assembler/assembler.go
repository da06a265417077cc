// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package assembler lays out and encodes a token stream into an 8051 program.
package assembler

import (
	"log"

	"github.com/ezrec/asm51/config"
	"github.com/ezrec/asm51/mnemonic"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
)

const (
	CODE_SIZE = 0x10000 // Size of the 8051 code address space.
)

// Assembler resolves labels and encodes instructions until the layout of the
// program no longer changes.
type Assembler struct {
	Config  *config.Config // Configuration; nil for the defaults.
	Verbose bool           // If set, verbosely logs the assembler actions.
}

// segmenter builds units from the token stream.
type segmenter struct {
	sink    *problem.Sink
	labels  map[string]*token.Label
	pending []*token.Label
	origin  uint32
	segment int
	units   []*Unit
	current *Unit
}

// open starts a new unit, attaching the pending labels.
func (seg *segmenter) open(unit *Unit) {
	unit.Origin = seg.origin
	unit.Segment = seg.segment
	for _, label := range seg.pending {
		// Pending labels have no origin yet.
		_ = label.SetOrigin(seg.origin)
	}
	unit.Labels = seg.pending
	seg.pending = nil
	seg.units = append(seg.units, unit)
	seg.current = unit
}

// orphan drops the pending labels, which have nothing to refer to.
func (seg *segmenter) orphan() {
	for _, label := range seg.pending {
		seg.sink.Errorf(label, "label '%v' has no instruction after it", label.Name())
		delete(seg.labels, label.Name())
	}
	seg.pending = nil
}

func (seg *segmenter) add(tok token.Token) {
	switch tok := tok.(type) {
	case *token.Label:
		if _, ok := seg.labels[tok.Name()]; ok {
			seg.sink.Errorf(tok, "label '%v' duplicated", tok.Name())
			return
		}
		seg.labels[tok.Name()] = tok
		seg.pending = append(seg.pending, tok)
	case *token.Mnemonic:
		unit := &Unit{Name: tok}
		if m, ok := mnemonic.Lookup(tok.Value()); ok {
			unit.mnemonic = m
		} else if !tok.Broken {
			seg.sink.Errorf(tok, "unknown mnemonic '%v'", tok.Value())
		}
		seg.open(unit)
	case *token.Operand:
		if seg.current == nil || seg.current.Name == nil {
			seg.sink.Errorf(tok, "operand '%v' without an instruction", tok.Value())
			return
		}
		seg.current.Operands = append(seg.current.Operands, tok)
	case *token.Directive:
		seg.current = nil
		switch {
		case tok.Directive == token.DIRECTIVE_ORG:
			seg.orphan()
			seg.origin = uint32(tok.Number)
			seg.segment++
		case tok.Raw():
			seg.open(&Unit{Data: tok})
		}
	}
}

// layout assigns code points to units in source order, restarting at the
// origin of each segment.
func layout(units []*Unit) {
	var point uint32
	segment := -1
	for _, unit := range units {
		if unit.Segment != segment {
			segment = unit.Segment
			point = unit.Origin
		}
		unit.Point = point
		for _, label := range unit.Labels {
			label.Offset = point - unit.Origin
		}
		point += uint32(unit.size)
	}
}

// resolve gives symbolic operands the addresses of their labels.
func resolve(units []*Unit, labels map[string]*token.Label) {
	for _, unit := range units {
		for _, op := range unit.Operands {
			if !op.Reference() {
				continue
			}
			if label, ok := labels[op.Symbol()]; ok {
				op.ToNumber(int(label.Address()))
			}
		}
	}
}

// Assemble a token stream. Recoverable problems are reported to the sink;
// a returned error is fatal.
func (asm *Assembler) Assemble(tokens []token.Token, sink *problem.Sink) (prog *Program, err error) {
	cfg := asm.Config
	if cfg == nil {
		cfg = config.New()
	}

	maxPasses := cfg.MaxPasses
	if maxPasses < 1 {
		maxPasses = config.DEFAULT_MAX_PASS
	}

	seg := &segmenter{
		sink:   sink,
		labels: map[string]*token.Label{},
	}
	for _, tok := range tokens {
		seg.add(tok)
	}
	seg.orphan()

	units := seg.units

	// Pass zero sizes every unit from nothing; only the re-layout passes
	// after it count against the cap.
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			err = ErrNoConvergence(maxPasses)
			return
		}

		layout(units)
		resolve(units, seg.labels)

		changed := 0
		for _, unit := range units {
			if unit.Compile(cfg) != 0 {
				changed++
			}
		}

		if asm.Verbose {
			log.Printf("pass %v: %v of %v units changed size", pass, changed, len(units))
		}

		if changed == 0 {
			break
		}
	}

	for _, unit := range units {
		sink.Merge(unit.Problems())
	}

	prog = newProgram(units, seg.labels)
	prog.check(sink)

	return
}
