// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mnemonic

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ezrec/asm51/config"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
)

// Env is the configuration and diagnostics sink of one assembler run.
type Env struct {
	Config *config.Config
	Sink   *problem.Sink
}

// situation applies the policy for a soft violation. It returns false if the
// policy makes it an error.
func (env *Env) situation(situation config.Situation, cause fmt.Stringer, key string, args ...any) bool {
	switch env.Config.Setting(situation) {
	case config.SETTING_ERROR:
		env.Sink.Errorf(cause, key, args...)
		return false
	case config.SETTING_WARN:
		env.Sink.Warnf(cause, key, args...)
	}
	return true
}

// Encoder turns one instruction into bytes. On failure it reports problems
// and returns no bytes.
type Encoder func(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) []byte

// Mnemonic describes an instruction and how to encode it.
type Mnemonic struct {
	Name              string // Lowercase name.
	MinOperands       int    // Fewest operands accepted.
	MaxOperands       int    // Most operands used; more are trailing.
	PositionSensitive bool   // Encoding depends on the instruction address.

	encode Encoder
}

// Encode an instruction at a code point.
func (m *Mnemonic) Encode(env *Env, point uint32, name *token.Mnemonic, ops []*token.Operand) (code []byte) {
	for _, op := range ops {
		if !op.Resolved() {
			env.Sink.Errorf(op, "Unresolved symbol '%v'", op.Symbol())
			return
		}
	}

	if len(ops) < m.MinOperands {
		env.Sink.Errorf(name, "%v expects at least %v operand(s)", m.Name, m.MinOperands)
		return
	}

	if len(ops) > m.MaxOperands {
		if !env.situation(config.SITUATION_TRAILING_OPERAND, ops[m.MaxOperands],
			"unnecessary trailing operand for %v", m.Name) {
			return
		}
		ops = ops[:m.MaxOperands]
	}

	return m.substitute(env, point, name, ops)
}

// mnemonics is the registry of all 8051 instructions.
var mnemonics = map[string]*Mnemonic{}

func register(name string, min, max int, positionSensitive bool, encode Encoder) {
	mnemonics[name] = &Mnemonic{
		Name:              name,
		MinOperands:       min,
		MaxOperands:       max,
		PositionSensitive: positionSensitive,
		encode:            encode,
	}
}

// Lookup a mnemonic by lowercase name.
func Lookup(name string) (m *Mnemonic, ok bool) {
	m, ok = mnemonics[name]
	return
}

// Names of all mnemonics, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(mnemonics))
}

func init() {
	register("nop", 0, 0, false, noOperand(0x00))
	register("ret", 0, 0, false, noOperand(0x22))
	register("reti", 0, 0, false, noOperand(0x32))

	register("add", 1, 2, false, arithmetic(0x20))
	register("addc", 1, 2, false, arithmetic(0x30))
	register("subb", 1, 2, false, arithmetic(0x90))
	register("mul", 0, 1, false, multiplicative(0xa4))
	register("div", 0, 1, false, multiplicative(0x84))

	register("orl", 1, 2, false, bitwiseLogical(0x40, 0x72, 0xa0))
	register("anl", 1, 2, false, bitwiseLogical(0x50, 0x82, 0xb0))
	register("xrl", 1, 2, false, bitwiseLogical(0x60, 0, 0))

	register("clr", 1, 1, false, bitOperation(0xe4, 0xc3, 0xc2))
	register("cpl", 1, 1, false, bitOperation(0xf4, 0xb3, 0xb2))
	register("setb", 1, 1, false, bitOperation(0, 0xd3, 0xd2))

	register("inc", 1, 1, false, incDecOperation(0x00, 0xa3))
	register("dec", 1, 1, false, incDecOperation(0x10, 0))

	register("rr", 0, 1, false, accumulatorOperation(0x03))
	register("rrc", 0, 1, false, accumulatorOperation(0x13))
	register("rl", 0, 1, false, accumulatorOperation(0x23))
	register("rlc", 0, 1, false, accumulatorOperation(0x33))
	register("swap", 0, 1, false, accumulatorOperation(0xc4))
	register("da", 0, 1, false, accumulatorOperation(0xd4))

	register("push", 1, 1, false, addressOperation(0xc0))
	register("pop", 1, 1, false, addressOperation(0xd0))

	register("ajmp", 1, 1, true, absoluteCodeJump(0x01))
	register("acall", 1, 1, true, absoluteCodeJump(0x11))
	register("ljmp", 1, 1, true, longJump(0x02))
	register("lcall", 1, 1, true, longJump(0x12))
	register("sjmp", 1, 1, true, shortJump(0x80))
	register("jmp", 1, 1, true, genericJump)
	register("call", 1, 1, true, genericCall)

	register("jc", 1, 1, true, jumpNameRelevant(0x40))
	register("jnc", 1, 1, true, jumpNameRelevant(0x50))
	register("jz", 1, 1, true, jumpNameRelevant(0x60))
	register("jnz", 1, 1, true, jumpNameRelevant(0x70))

	register("jbc", 2, 2, true, jumpBitRelevant(0x10))
	register("jb", 2, 2, true, jumpBitRelevant(0x20))
	register("jnb", 2, 2, true, jumpBitRelevant(0x30))

	register("cjne", 3, 3, true, compareJump)
	register("djnz", 2, 2, true, decrementJump)

	register("mov", 2, 2, false, move)
	register("movc", 2, 2, false, moveCode)
	register("movx", 2, 2, false, moveExternal)
	register("xch", 2, 2, false, exchange)
	register("xchd", 2, 2, false, exchangeDigit)
}
