package mnemonic

import (
	"github.com/ezrec/asm51/token"
)

const (
	OPCODE_AJMP   = 0x01
	OPCODE_LJMP   = 0x02
	OPCODE_ACALL  = 0x11
	OPCODE_LCALL  = 0x12
	OPCODE_JMP_A  = 0x73
	OPCODE_SJMP   = 0x80
	OPCODE_DJNZ_D = 0xd5
	OPCODE_DJNZ_R = 0xd8

	OPCODE_CJNE_A_IMMEDIATE = 0xb4
	OPCODE_CJNE_A_DIRECT    = 0xb5
	OPCODE_CJNE_INDIRECT    = 0xb6
	OPCODE_CJNE_REGISTER    = 0xb8
)

func absolute(opcode byte, target uint32) []byte {
	return []byte{byte((target>>3)&0xe0) | opcode, byte(target)}
}

func long(opcode byte, target uint32) []byte {
	return []byte{opcode, byte(target >> 8), byte(target)}
}

// absoluteCodeJump encodes AJMP and ACALL.
func absoluteCodeJump(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		target, ok := env.target(point, ops[0])
		if !ok {
			return nil
		}
		if !samePage(point, target) {
			env.Sink.Errorf(ops[0], "jump/call address too far for absolute addressing")
			return nil
		}
		return absolute(opcode, target)
	}
}

// longJump encodes LJMP and LCALL.
func longJump(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		target, ok := env.target(point, ops[0])
		if !ok {
			return nil
		}
		return long(opcode, target)
	}
}

// shortJump encodes SJMP.
func shortJump(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		target, ok := env.target(point, ops[0])
		if !ok {
			return nil
		}
		rel, ok := env.relative(point+2, target, ops[0])
		if !ok {
			return nil
		}
		return []byte{opcode, rel}
	}
}

// genericJump encodes JMP as the shortest of SJMP, AJMP and LJMP that
// reaches the target, or as 'JMP @A+DPTR'.
func genericJump(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	if ops[0].IsIndirect(token.INDIRECT_A_DPTR) {
		return []byte{OPCODE_JMP_A}
	}

	target, ok := env.target(point, ops[0])
	if !ok {
		return nil
	}

	delta := int64(target) - int64(point+2)
	switch {
	case delta >= SHORT_MINIMUM && delta <= SHORT_MAXIMUM:
		return []byte{OPCODE_SJMP, byte(int8(delta))}
	case samePage(point, target):
		return absolute(OPCODE_AJMP, target)
	}
	return long(OPCODE_LJMP, target)
}

// genericCall encodes CALL as ACALL when the target is in reach, otherwise
// as LCALL.
func genericCall(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	target, ok := env.target(point, ops[0])
	if !ok {
		return nil
	}
	if samePage(point, target) {
		return absolute(OPCODE_ACALL, target)
	}
	return long(OPCODE_LCALL, target)
}

// jumpNameRelevant encodes JC, JNC, JZ and JNZ.
func jumpNameRelevant(opcode byte) Encoder {
	return shortJump(opcode)
}

// jumpBitRelevant encodes JB, JNB and JBC.
func jumpBitRelevant(opcode byte) Encoder {
	return func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
		addr, ok := env.bit(ops[0])
		if !ok {
			return nil
		}
		target, ok := env.target(point, ops[1])
		if !ok {
			return nil
		}
		rel, ok := env.relative(point+3, target, ops[1])
		if !ok {
			return nil
		}
		return []byte{opcode, addr, rel}
	}
}

// compareJump encodes CJNE.
func compareJump(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	left, right := ops[0], ops[1]

	var code []byte
	switch {
	case left.Is(token.NAME_A):
		if data, ok := env.immediate(right); ok {
			code = []byte{OPCODE_CJNE_A_IMMEDIATE, data}
		} else if addr, ok := env.direct(right); ok {
			code = []byte{OPCODE_CJNE_A_DIRECT, addr}
		}
	default:
		data, ok := env.immediate(right)
		if !ok {
			return nil
		}
		if i, ok := env.indirectRegister(left); ok {
			code = []byte{OPCODE_CJNE_INDIRECT | i, data}
		} else if n, ok := env.register(left); ok {
			code = []byte{OPCODE_CJNE_REGISTER | n, data}
		}
	}
	if code == nil {
		return nil
	}

	target, ok := env.target(point, ops[2])
	if !ok {
		return nil
	}
	rel, ok := env.relative(point+3, target, ops[2])
	if !ok {
		return nil
	}

	return append(code, rel)
}

// decrementJump encodes DJNZ.
func decrementJump(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	var code []byte
	if n, ok := env.register(ops[0]); ok {
		code = []byte{OPCODE_DJNZ_R | n}
	} else if addr, ok := env.direct(ops[0]); ok {
		code = []byte{OPCODE_DJNZ_D, addr}
	} else {
		return nil
	}

	target, ok := env.target(point, ops[1])
	if !ok {
		return nil
	}
	rel, ok := env.relative(point+uint32(len(code))+1, target, ops[1])
	if !ok {
		return nil
	}

	return append(code, rel)
}
