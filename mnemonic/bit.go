package mnemonic

import (
	"github.com/ezrec/asm51/token"
)

// Low opcode bits of the direct destination forms of ANL, ORL and XRL.
const (
	LOGICAL_DIRECT_A         = 0x02
	LOGICAL_DIRECT_IMMEDIATE = 0x03
)

// bitwiseLogical encodes ANL, ORL and XRL. Carry opcodes of zero mean the
// instruction has no carry forms.
func bitwiseLogical(base byte, carryBit byte, carryNotBit byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		if len(ops) == 1 || ops[0].Is(token.NAME_A) {
			src, ok := env.accumulatorOperands(name, ops)
			if !ok {
				return nil
			}
			return env.accumulatorSource(base, src)
		}

		dst, src := ops[0], ops[1]

		if dst.Is(token.NAME_C) {
			if carryBit == 0 {
				return nil
			}
			if addr, ok := env.negatedBit(src); ok {
				return []byte{carryNotBit, addr}
			}
			if addr, ok := env.bit(src); ok {
				return []byte{carryBit, addr}
			}
			return nil
		}

		addr, ok := env.direct(dst)
		if !ok {
			return nil
		}
		if src.Is(token.NAME_A) {
			return []byte{base | LOGICAL_DIRECT_A, addr}
		}
		if data, ok := env.immediate(src); ok {
			return []byte{base | LOGICAL_DIRECT_IMMEDIATE, addr, data}
		}
		return nil
	}
}

// bitOperation encodes CLR, CPL and SETB. An accumulator opcode of zero means
// the instruction has no accumulator form.
func bitOperation(accumulator byte, carry byte, bit byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		op := ops[0]
		switch {
		case op.Is(token.NAME_A):
			if accumulator == 0 {
				return nil
			}
			return []byte{accumulator}
		case op.Is(token.NAME_C):
			return []byte{carry}
		}

		addr, ok := env.bit(op)
		if !ok {
			return nil
		}
		return []byte{bit, addr}
	}
}
