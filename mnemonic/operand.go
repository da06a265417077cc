package mnemonic

import (
	"github.com/ezrec/asm51/config"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/sfr"
	"github.com/ezrec/asm51/token"
)

const (
	BYTE_MAXIMUM     = 0xff
	WORD_MAXIMUM     = 0xffff
	REGISTER_MAXIMUM = 7
	INDIRECT_MAXIMUM = 1

	SHORT_MINIMUM = -128
	SHORT_MAXIMUM = 127

	PAGE_SHIFT = 11 // AJMP/ACALL reach within a 2KiB page.
)

// substitutable returns the direct address form of an ambiguous operand:
// 'a' as ACC, 'c' as CY, and 'rN' in the selected register bank.
func substitutable(env *Env, op *token.Operand) (sub *token.Operand, err error) {
	switch {
	case op.Is(token.NAME_A):
		sub = op.WithAddress(sfr.ACC, token.SPACE_BYTE)
		return
	case op.Is(token.NAME_C):
		sub = op.WithAddress(sfr.CY, token.SPACE_BIT)
		return
	}

	if n, isRegister := op.Register(); isRegister && n <= REGISTER_MAXIMUM {
		bank, hasBank := env.Config.Bank()
		var addr int
		addr, err = op.AsAddress(bank, hasBank)
		if err != nil {
			return
		}
		sub = op.WithAddress(addr, token.SPACE_BYTE)
	}

	return
}

// substitute tries every combination of ambiguous operands replaced by their
// direct address forms, the unsubstituted form first, and keeps the first
// that encodes. If none does, the problems of the unsubstituted attempt are
// reported.
func (m *Mnemonic) substitute(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) (code []byte) {
	var slots []int
	var subs []*token.Operand
	var unbanked []*token.Operand
	for n, op := range ops {
		sub, err := substitutable(env, op)
		switch {
		case err != nil:
			unbanked = append(unbanked, op)
		case sub != nil:
			slots = append(slots, n)
			subs = append(subs, sub)
		}
	}

	var first *problem.Sink
	trial := make([]*token.Operand, len(ops))
	for mask := 0; mask < 1<<len(slots); mask++ {
		copy(trial, ops)
		for j, slot := range slots {
			if mask&(1<<j) != 0 {
				trial[slot] = subs[j]
			}
		}

		scratch := &problem.Sink{Path: env.Sink.Path}
		code = m.encode(&Env{Config: env.Config, Sink: scratch}, point, name, trial)
		if len(code) != 0 {
			env.Sink.Merge(scratch)
			return
		}
		if first == nil {
			first = scratch
		}
	}

	env.Sink.Merge(first)
	if first.Len() == 0 {
		for _, op := range unbanked {
			env.Sink.Errorf(op, "register %v has no direct address without a selected register bank", op.Name())
		}
		if len(unbanked) == 0 {
			env.Sink.Errorf(name, "invalid operands for %v", m.Name)
		}
	}

	return nil
}

// omitted handles an omitted operand that is implied by the mnemonic.
func (env *Env) omitted(name *token.Mnemonic, operand string) bool {
	return env.situation(config.SITUATION_OMITTED_OPERAND, name,
		"omitted operand '%v' for %v", operand, name.Value())
}

// direct decodes a byte address.
func (env *Env) direct(op *token.Operand) (addr byte, ok bool) {
	if op.Class() != token.OPERAND_ADDRESS {
		return
	}
	if op.Space() == token.SPACE_BIT {
		return
	}
	if op.Number() < 0 || op.Number() > BYTE_MAXIMUM {
		env.Sink.Errorf(op, "value of direct address too big")
		return
	}
	return byte(op.Number()), true
}

// bit decodes a bit address.
func (env *Env) bit(op *token.Operand) (addr byte, ok bool) {
	if op.Class() != token.OPERAND_ADDRESS {
		return
	}
	if op.Space() == token.SPACE_BYTE {
		return
	}
	if op.Number() < 0 || op.Number() > BYTE_MAXIMUM {
		env.Sink.Errorf(op, "value of bit address too big")
		return
	}
	return byte(op.Number()), true
}

// negatedBit decodes a '/bit' address.
func (env *Env) negatedBit(op *token.Operand) (addr byte, ok bool) {
	if op.Class() != token.OPERAND_NEGATED_ADDRESS {
		return
	}
	if op.Number() < 0 || op.Number() > BYTE_MAXIMUM {
		env.Sink.Errorf(op, "value of bit address too big")
		return
	}
	return byte(op.Number()), true
}

// immediate decodes a '#data' byte.
func (env *Env) immediate(op *token.Operand) (data byte, ok bool) {
	if op.Class() != token.OPERAND_CONSTANT {
		return
	}
	if op.Number() < 0 || op.Number() > BYTE_MAXIMUM {
		env.Sink.Errorf(op, "value of constant too big")
		return
	}
	return byte(op.Number()), true
}

// immediate16 decodes a '#data16' word.
func (env *Env) immediate16(op *token.Operand) (data uint16, ok bool) {
	if op.Class() != token.OPERAND_CONSTANT {
		return
	}
	if op.Number() < 0 || op.Number() > WORD_MAXIMUM {
		env.Sink.Errorf(op, "value of constant too big")
		return
	}
	return uint16(op.Number()), true
}

// register decodes 'rN'.
func (env *Env) register(op *token.Operand) (n byte, ok bool) {
	r, isRegister := op.Register()
	if !isRegister {
		return
	}
	if r > REGISTER_MAXIMUM {
		env.Sink.Errorf(op, "register %v does not exist", op.Name())
		return
	}
	return byte(r), true
}

// indirectRegister decodes '@rN'.
func (env *Env) indirectRegister(op *token.Operand) (n byte, ok bool) {
	r, isIndirect := op.IndirectRegister()
	if !isIndirect {
		return
	}
	if r > INDIRECT_MAXIMUM {
		env.Sink.Errorf(op, "register %v cannot be used indirectly", op.Name())
		return
	}
	return byte(r), true
}

// target decodes a code address: an address, or an offset from the
// instruction's own address.
func (env *Env) target(point uint32, op *token.Operand) (addr uint32, ok bool) {
	switch op.Class() {
	case token.OPERAND_ADDRESS:
		if op.Space() != token.SPACE_ANY {
			return
		}
		if op.Number() < 0 || op.Number() > WORD_MAXIMUM {
			env.Sink.Errorf(op, "code address too big")
			return
		}
		return uint32(op.Number()), true
	case token.OPERAND_ADDRESS_OFFSET:
		if !env.situation(config.SITUATION_ADDRESS_OFFSET, op,
			"address offset '%v' used as a jump target", op.Value()) {
			return
		}
		abs := int64(point) + int64(op.Number())
		if abs < 0 || abs > WORD_MAXIMUM {
			env.Sink.Errorf(op, "code address too big")
			return
		}
		return uint32(abs), true
	}

	return
}

// relative computes the short displacement to target from the address
// following the instruction.
func (env *Env) relative(next uint32, target uint32, op *token.Operand) (rel byte, ok bool) {
	delta := int64(target) - int64(next)
	if delta < SHORT_MINIMUM || delta > SHORT_MAXIMUM {
		env.Sink.Errorf(op, "jump too far for short jump")
		return
	}
	return byte(int8(delta)), true
}

// samePage is true if AJMP/ACALL at point can reach target.
func samePage(point uint32, target uint32) bool {
	return (target>>PAGE_SHIFT)&0x1f == ((point+2)>>PAGE_SHIFT)&0x1f
}
