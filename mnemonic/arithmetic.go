package mnemonic

import (
	"github.com/ezrec/asm51/token"
)

// Low opcode bits selecting the source of an accumulator operation.
const (
	SOURCE_ACCUMULATOR = 0x04 // INC and DEC only.
	SOURCE_IMMEDIATE   = 0x04
	SOURCE_DIRECT      = 0x05
	SOURCE_INDIRECT    = 0x06
	SOURCE_REGISTER    = 0x08
)

// accumulatorSource encodes 'op A, src' for the four source forms shared by
// arithmetic and logical instructions.
func (env *Env) accumulatorSource(base byte, src *token.Operand) (code []byte) {
	if data, ok := env.immediate(src); ok {
		return []byte{base | SOURCE_IMMEDIATE, data}
	}
	if addr, ok := env.direct(src); ok {
		return []byte{base | SOURCE_DIRECT, addr}
	}
	if i, ok := env.indirectRegister(src); ok {
		return []byte{base | SOURCE_INDIRECT | i}
	}
	if n, ok := env.register(src); ok {
		return []byte{base | SOURCE_REGISTER | n}
	}
	return
}

// accumulatorOperands returns the source operand of 'op A, src', allowing
// the accumulator to be omitted.
func (env *Env) accumulatorOperands(name *token.Mnemonic, ops []*token.Operand) (src *token.Operand, ok bool) {
	switch len(ops) {
	case 1:
		if !env.omitted(name, token.NAME_A) {
			return
		}
		return ops[0], true
	case 2:
		if !ops[0].Is(token.NAME_A) {
			return
		}
		return ops[1], true
	}
	return
}

func noOperand(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		return []byte{opcode}
	}
}

// arithmetic encodes ADD, ADDC and SUBB.
func arithmetic(base byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		if len(ops) == 2 && !ops[0].Is(token.NAME_A) {
			return nil
		}
		src, ok := env.accumulatorOperands(name, ops)
		if !ok {
			return nil
		}
		return env.accumulatorSource(base, src)
	}
}

// multiplicative encodes MUL and DIV, whose only operand is 'AB'.
func multiplicative(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		if len(ops) == 0 {
			if !env.omitted(name, token.NAME_AB) {
				return nil
			}
			return []byte{opcode}
		}
		if !ops[0].Is(token.NAME_AB) {
			return nil
		}
		return []byte{opcode}
	}
}

// accumulatorOperation encodes rotates, SWAP and DA, whose only operand is
// the accumulator.
func accumulatorOperation(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		if len(ops) == 0 {
			if !env.omitted(name, token.NAME_A) {
				return nil
			}
			return []byte{opcode}
		}
		if !ops[0].Is(token.NAME_A) {
			return nil
		}
		return []byte{opcode}
	}
}

// incDecOperation encodes INC and DEC. A dptr opcode of zero means the
// instruction has no DPTR form.
func incDecOperation(base byte, dptr byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		op := ops[0]
		switch {
		case op.Is(token.NAME_A):
			return []byte{base | SOURCE_ACCUMULATOR}
		case op.Is(token.NAME_DPTR):
			if dptr == 0 {
				return nil
			}
			return []byte{dptr}
		}

		if addr, ok := env.direct(op); ok {
			return []byte{base | SOURCE_DIRECT, addr}
		}
		if i, ok := env.indirectRegister(op); ok {
			return []byte{base | SOURCE_INDIRECT | i}
		}
		if n, ok := env.register(op); ok {
			return []byte{base | SOURCE_REGISTER | n}
		}
		return nil
	}
}

// addressOperation encodes PUSH and POP.
func addressOperation(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		addr, ok := env.direct(ops[0])
		if !ok {
			return nil
		}
		return []byte{opcode, addr}
	}
}
