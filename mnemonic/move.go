package mnemonic

import (
	"github.com/ezrec/asm51/token"
)

const (
	OPCODE_MOV_A_IMMEDIATE     = 0x74
	OPCODE_MOV_A_DIRECT        = 0xe5
	OPCODE_MOV_A_INDIRECT      = 0xe6
	OPCODE_MOV_A_REGISTER      = 0xe8
	OPCODE_MOV_C_BIT           = 0xa2
	OPCODE_MOV_BIT_C           = 0x92
	OPCODE_MOV_DPTR            = 0x90
	OPCODE_MOV_REGISTER_A      = 0xf8
	OPCODE_MOV_REGISTER_D      = 0xa8
	OPCODE_MOV_REGISTER_I      = 0x78
	OPCODE_MOV_INDIRECT_A      = 0xf6
	OPCODE_MOV_INDIRECT_D      = 0xa6
	OPCODE_MOV_INDIRECT_I      = 0x76
	OPCODE_MOV_DIRECT_A        = 0xf5
	OPCODE_MOV_DIRECT_I        = 0x75
	OPCODE_MOV_DIRECT_D        = 0x85
	OPCODE_MOV_DIRECT_INDIRECT = 0x86
	OPCODE_MOV_DIRECT_R        = 0x88
	OPCODE_MOVC_A_DPTR         = 0x93
	OPCODE_MOVC_A_PC           = 0x83
	OPCODE_MOVX_A_DPTR         = 0xe0
	OPCODE_MOVX_A_INDIRECT     = 0xe2
	OPCODE_MOVX_DPTR_A         = 0xf0
	OPCODE_MOVX_INDIRECT_A     = 0xf2
	OPCODE_XCH_DIRECT          = 0xc5
	OPCODE_XCH_INDIRECT        = 0xc6
	OPCODE_XCH_REGISTER        = 0xc8
	OPCODE_XCHD_INDIRECT       = 0xd6
)

// move encodes all forms of MOV.
func move(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	dst, src := ops[0], ops[1]

	switch {
	case dst.Is(token.NAME_A):
		if data, ok := env.immediate(src); ok {
			return []byte{OPCODE_MOV_A_IMMEDIATE, data}
		}
		if addr, ok := env.direct(src); ok {
			return []byte{OPCODE_MOV_A_DIRECT, addr}
		}
		if i, ok := env.indirectRegister(src); ok {
			return []byte{OPCODE_MOV_A_INDIRECT | i}
		}
		if n, ok := env.register(src); ok {
			return []byte{OPCODE_MOV_A_REGISTER | n}
		}
		return nil
	case dst.Is(token.NAME_C):
		if addr, ok := env.bit(src); ok {
			return []byte{OPCODE_MOV_C_BIT, addr}
		}
		return nil
	case dst.Is(token.NAME_DPTR):
		if data, ok := env.immediate16(src); ok {
			return []byte{OPCODE_MOV_DPTR, byte(data >> 8), byte(data)}
		}
		return nil
	}

	if n, ok := env.register(dst); ok {
		if src.Is(token.NAME_A) {
			return []byte{OPCODE_MOV_REGISTER_A | n}
		}
		if addr, ok := env.direct(src); ok {
			return []byte{OPCODE_MOV_REGISTER_D | n, addr}
		}
		if data, ok := env.immediate(src); ok {
			return []byte{OPCODE_MOV_REGISTER_I | n, data}
		}
		return nil
	}

	if i, ok := env.indirectRegister(dst); ok {
		if src.Is(token.NAME_A) {
			return []byte{OPCODE_MOV_INDIRECT_A | i}
		}
		if addr, ok := env.direct(src); ok {
			return []byte{OPCODE_MOV_INDIRECT_D | i, addr}
		}
		if data, ok := env.immediate(src); ok {
			return []byte{OPCODE_MOV_INDIRECT_I | i, data}
		}
		return nil
	}

	if src.Is(token.NAME_C) {
		if addr, ok := env.bit(dst); ok {
			return []byte{OPCODE_MOV_BIT_C, addr}
		}
		return nil
	}

	addr, ok := env.direct(dst)
	if !ok {
		return nil
	}
	if src.Is(token.NAME_A) {
		return []byte{OPCODE_MOV_DIRECT_A, addr}
	}
	if data, ok := env.immediate(src); ok {
		return []byte{OPCODE_MOV_DIRECT_I, addr, data}
	}
	if from, ok := env.direct(src); ok {
		return []byte{OPCODE_MOV_DIRECT_D, from, addr}
	}
	if i, ok := env.indirectRegister(src); ok {
		return []byte{OPCODE_MOV_DIRECT_INDIRECT | i, addr}
	}
	if n, ok := env.register(src); ok {
		return []byte{OPCODE_MOV_DIRECT_R | n, addr}
	}
	return nil
}

// moveCode encodes MOVC.
func moveCode(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	if !ops[0].Is(token.NAME_A) {
		return nil
	}
	switch {
	case ops[1].IsIndirect(token.INDIRECT_A_DPTR):
		return []byte{OPCODE_MOVC_A_DPTR}
	case ops[1].IsIndirect(token.INDIRECT_A_PC):
		return []byte{OPCODE_MOVC_A_PC}
	}
	return nil
}

// moveExternal encodes MOVX.
func moveExternal(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	dst, src := ops[0], ops[1]

	if dst.Is(token.NAME_A) {
		if src.IsIndirect(token.NAME_DPTR) {
			return []byte{OPCODE_MOVX_A_DPTR}
		}
		if i, ok := env.indirectRegister(src); ok {
			return []byte{OPCODE_MOVX_A_INDIRECT | i}
		}
		return nil
	}

	if !src.Is(token.NAME_A) {
		return nil
	}
	if dst.IsIndirect(token.NAME_DPTR) {
		return []byte{OPCODE_MOVX_DPTR_A}
	}
	if i, ok := env.indirectRegister(dst); ok {
		return []byte{OPCODE_MOVX_INDIRECT_A | i}
	}
	return nil
}

// exchange encodes XCH.
func exchange(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	if !ops[0].Is(token.NAME_A) {
		return nil
	}
	src := ops[1]
	if addr, ok := env.direct(src); ok {
		return []byte{OPCODE_XCH_DIRECT, addr}
	}
	if i, ok := env.indirectRegister(src); ok {
		return []byte{OPCODE_XCH_INDIRECT | i}
	}
	if n, ok := env.register(src); ok {
		return []byte{OPCODE_XCH_REGISTER | n}
	}
	return nil
}

// exchangeDigit encodes XCHD.
func exchangeDigit(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte {
	if !ops[0].Is(token.NAME_A) {
		return nil
	}
	if i, ok := env.indirectRegister(ops[1]); ok {
		return []byte{OPCODE_XCHD_INDIRECT | i}
	}
	return nil
}
