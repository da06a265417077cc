package mnemonic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/asm51/config"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
	"github.com/ezrec/asm51/tokenizer"
)

// encode assembles a single line at a code point.
func encode(t *testing.T, cfg *config.Config, point uint32, line string) ([]byte, *problem.Sink) {
	sink := &problem.Sink{}
	tz := &tokenizer.Tokenizer{Path: "test.asm"}
	tokens := tz.Tokenize([]string{line}, sink)
	require.Equal(t, 0, sink.Len(), line)
	require.NotEmpty(t, tokens, line)

	name, ok := tokens[0].(*token.Mnemonic)
	require.True(t, ok, line)

	var ops []*token.Operand
	for _, tok := range tokens[1:] {
		ops = append(ops, tok.(*token.Operand))
	}

	m, ok := Lookup(name.Value())
	require.True(t, ok, line)

	env := &Env{Config: cfg, Sink: sink}
	return m.Encode(env, point, name, ops), sink
}

func messages(sink *problem.Sink) (out []string) {
	for _, p := range sink.Problems() {
		out = append(out, p.Severity.String()+": "+p.Message)
	}
	return
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	names := Names()
	assert.Len(names, 45)
	assert.Equal("acall", names[0])
	assert.Equal("xrl", names[len(names)-1])

	_, ok := Lookup("mov")
	assert.True(ok)
	_, ok = Lookup("move")
	assert.False(ok)

	m, _ := Lookup("sjmp")
	assert.True(m.PositionSensitive)
	m, _ = Lookup("mov")
	assert.False(m.PositionSensitive)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		code []byte
	}{
		{"nop", []byte{0x00}},
		{"ret", []byte{0x22}},
		{"reti", []byte{0x32}},
		{"ljmp 1234", []byte{0x02, 0x04, 0xd2}},
		{"add a, #10h", []byte{0x24, 0x10}},
		{"add a, 30h", []byte{0x25, 0x30}},
		{"add a, @r1", []byte{0x27}},
		{"add a, r5", []byte{0x2d}},
		{"add r5", []byte{0x2d}},
		{"addc a, #1", []byte{0x34, 0x01}},
		{"subb a, r0", []byte{0x98}},
		{"mul ab", []byte{0xa4}},
		{"div", []byte{0x84}},
		{"anl a, #0fh", []byte{0x54, 0x0f}},
		{"orl 20h, a", []byte{0x42, 0x20}},
		{"xrl 20h, #1", []byte{0x63, 0x20, 0x01}},
		{"anl c, 20h.1", []byte{0x82, 0x01}},
		{"anl c, /20h.1", []byte{0xb0, 0x01}},
		{"orl c, /acc.7", []byte{0xa0, 0xe7}},
		{"orl c, ea", []byte{0x72, 0xaf}},
		{"clr a", []byte{0xe4}},
		{"clr c", []byte{0xc3}},
		{"clr p1.0", []byte{0xc2, 0x90}},
		{"setb c", []byte{0xd3}},
		{"setb tr0", []byte{0xd2, 0x8c}},
		{"cpl 20h.0", []byte{0xb2, 0x00}},
		{"cpl a", []byte{0xf4}},
		{"inc a", []byte{0x04}},
		{"inc dptr", []byte{0xa3}},
		{"inc @r0", []byte{0x06}},
		{"dec r7", []byte{0x1f}},
		{"dec 30h", []byte{0x15, 0x30}},
		{"rl a", []byte{0x23}},
		{"rr", []byte{0x03}},
		{"swap a", []byte{0xc4}},
		{"da a", []byte{0xd4}},
		{"push acc", []byte{0xc0, 0xe0}},
		{"push a", []byte{0xc0, 0xe0}},
		{"pop psw", []byte{0xd0, 0xd0}},
		{"mov a, #10", []byte{0x74, 0x0a}},
		{"mov a, r3", []byte{0xeb}},
		{"mov a, @r1", []byte{0xe7}},
		{"mov a, 30h", []byte{0xe5, 0x30}},
		{"mov r3, a", []byte{0xfb}},
		{"mov r2, 30h", []byte{0xaa, 0x30}},
		{"mov r2, #1", []byte{0x7a, 0x01}},
		{"mov @r0, a", []byte{0xf6}},
		{"mov @r0, 30h", []byte{0xa6, 0x30}},
		{"mov @r1, #3", []byte{0x77, 0x03}},
		{"mov 30h, a", []byte{0xf5, 0x30}},
		{"mov 30h, #5", []byte{0x75, 0x30, 0x05}},
		{"mov 30h, 40h", []byte{0x85, 0x40, 0x30}},
		{"mov 30h, @r0", []byte{0x86, 0x30}},
		{"mov 30h, r2", []byte{0x8a, 0x30}},
		{"mov dptr, #1234h", []byte{0x90, 0x12, 0x34}},
		{"mov c, p1.0", []byte{0xa2, 0x90}},
		{"mov p1.0, c", []byte{0x92, 0x90}},
		{"movc a, @a+dptr", []byte{0x93}},
		{"movc a, @a+pc", []byte{0x83}},
		{"movx a, @dptr", []byte{0xe0}},
		{"movx a, @r1", []byte{0xe3}},
		{"movx @dptr, a", []byte{0xf0}},
		{"movx @r1, a", []byte{0xf3}},
		{"xch a, r1", []byte{0xc9}},
		{"xch a, 30h", []byte{0xc5, 0x30}},
		{"xch a, @r0", []byte{0xc6}},
		{"xchd a, @r1", []byte{0xd7}},
		{"jmp @a+dptr", []byte{0x73}},
	}

	for _, tc := range table {
		code, sink := encode(t, config.New(), 0, tc.line)
		assert.Equal(tc.code, code, tc.line)
		assert.Equal(0, sink.Len(), tc.line)
	}
}

func TestEncodeJumps(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		code []byte
	}{
		{"sjmp 100h", []byte{0x80, 0xfe}},
		{"sjmp 104h", []byte{0x80, 0x02}},
		{"jc 0f0h", []byte{0x40, 0xee}},
		{"jnz 102h", []byte{0x70, 0x00}},
		{"jb 20h.0, 110h", []byte{0x20, 0x00, 0x0d}},
		{"jbc tf0, 100h", []byte{0x10, 0x8d, 0xfd}},
		{"cjne a, #1, 100h", []byte{0xb4, 0x01, 0xfd}},
		{"cjne a, 30h, 100h", []byte{0xb5, 0x30, 0xfd}},
		{"cjne @r0, #1, 100h", []byte{0xb6, 0x01, 0xfd}},
		{"cjne r1, #1, 100h", []byte{0xb9, 0x01, 0xfd}},
		{"djnz r2, 100h", []byte{0xda, 0xfe}},
		{"djnz 30h, 100h", []byte{0xd5, 0x30, 0xfd}},
		{"ajmp 123h", []byte{0x21, 0x23}},
		{"acall 7ffh", []byte{0xf1, 0xff}},
		{"lcall 1234h", []byte{0x12, 0x12, 0x34}},
		{"jmp 104h", []byte{0x80, 0x02}},
		{"jmp 500h", []byte{0xa1, 0x00}},
		{"jmp 1000h", []byte{0x02, 0x10, 0x00}},
		{"call 200h", []byte{0x51, 0x00}},
		{"call 1000h", []byte{0x12, 0x10, 0x00}},
	}

	for _, tc := range table {
		code, sink := encode(t, config.New(), 0x100, tc.line)
		assert.Equal(tc.code, code, tc.line)
		assert.Equal(0, sink.Len(), tc.line)
	}
}

func TestEncodeOffset(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New()
	require.NoError(t, cfg.Set(config.SITUATION_ADDRESS_OFFSET.String(), "ignore"))

	code, sink := encode(t, cfg, 0x100, "ljmp -4")
	assert.Equal([]byte{0x02, 0x00, 0xfc}, code)
	assert.Equal(0, sink.Len())

	code, sink = encode(t, cfg, 0x100, "sjmp +4")
	assert.Equal([]byte{0x80, 0x02}, code)
	assert.Equal(0, sink.Len())

	code, sink = encode(t, cfg, 0, "ljmp -4")
	assert.Empty(code)
	assert.Equal([]string{"error: code address too big"}, messages(sink))

	code, sink = encode(t, cfg, 0xfffe, "ljmp +4")
	assert.Empty(code)
	assert.Equal([]string{"error: code address too big"}, messages(sink))
}

func TestEncodeProblems(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line     string
		messages []string
	}{
		{"mov a, 100h", []string{"error: value of direct address too big"}},
		{"mov a, #256", []string{"error: value of constant too big"}},
		{"ajmp 800h", []string{"error: jump/call address too far for absolute addressing"}},
		{"sjmp 200h", []string{"error: jump too far for short jump"}},
		{"djnz r1, 0", []string{"error: jump too far for short jump"}},
		{"add 30h, a", []string{"error: invalid operands for add"}},
		{"setb a", []string{"error: invalid operands for setb"}},
		{"mov r9, a", []string{"error: register r9 does not exist"}},
		{"mov @r2, a", []string{"error: register r2 cannot be used indirectly"}},
		{"push r0", []string{"error: register r0 has no direct address without a selected register bank"}},
		{"mov a", []string{"error: mov expects at least 2 operand(s)"}},
		{"sjmp loop", []string{"error: Unresolved symbol 'loop'"}},
		{"sjmp +4", []string{"warning: address offset '+4' used as a jump target"}},
		{"nop 5", []string{"warning: unnecessary trailing operand for nop"}},
	}

	for _, tc := range table {
		_, sink := encode(t, config.New(), 0x100, tc.line)
		assert.Equal(tc.messages, messages(sink), tc.line)
	}
}

func TestPolicy(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New()

	code, sink := encode(t, cfg, 0x100, "sjmp +4")
	assert.Equal([]byte{0x80, 0x02}, code)
	assert.Equal(1, sink.Count(problem.SEVERITY_WARNING))

	code, sink = encode(t, cfg, 0x100, "nop 5")
	assert.Equal([]byte{0x00}, code)
	assert.Equal(1, sink.Count(problem.SEVERITY_WARNING))

	require.NoError(t, cfg.Set(config.SITUATION_ADDRESS_OFFSET.String(), "error"))
	require.NoError(t, cfg.Set(config.SITUATION_TRAILING_OPERAND.String(), "error"))
	require.NoError(t, cfg.Set(config.SITUATION_OMITTED_OPERAND.String(), "error"))

	code, sink = encode(t, cfg, 0x100, "sjmp +4")
	assert.Empty(code)
	assert.Equal([]string{"error: address offset '+4' used as a jump target"}, messages(sink))

	code, sink = encode(t, cfg, 0x100, "nop 5")
	assert.Empty(code)
	assert.Equal([]string{"error: unnecessary trailing operand for nop"}, messages(sink))

	code, sink = encode(t, cfg, 0x100, "add r1")
	assert.Empty(code)
	assert.Equal([]string{"error: omitted operand 'a' for add"}, messages(sink))

	require.NoError(t, cfg.Set(config.SITUATION_ADDRESS_OFFSET.String(), "ignore"))
	require.NoError(t, cfg.Set(config.SITUATION_OMITTED_OPERAND.String(), "warn"))

	code, sink = encode(t, cfg, 0x100, "sjmp -2")
	assert.Equal([]byte{0x80, 0xfc}, code)
	assert.Equal(0, sink.Len())

	code, sink = encode(t, cfg, 0x100, "add r1")
	assert.Equal([]byte{0x29}, code)
	assert.Equal([]string{"warning: omitted operand 'a' for add"}, messages(sink))
}

func TestSubstitution(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New()
	require.NoError(t, cfg.Set(config.SWITCH_REGISTER_BANK, "1"))

	table := []struct {
		line string
		code []byte
	}{
		{"push r0", []byte{0xc0, 0x08}},
		{"pop r7", []byte{0xd0, 0x0f}},
		{"mov r0, r1", []byte{0x89, 0x08}},
		{"mov a, r1", []byte{0xe9}},
		{"xch a, r2", []byte{0xca}},
		{"push a", []byte{0xc0, 0xe0}},
		{"mov psw, a", []byte{0xf5, 0xd0}},
		{"mov 30h, c", []byte{0x92, 0x30}},
	}

	for _, tc := range table {
		code, sink := encode(t, cfg, 0, tc.line)
		assert.Equal(tc.code, code, tc.line)
		assert.Equal(0, sink.Len(), tc.line)
	}

	// 'c' is a bit and 'a' is a byte; neither substitutes for the other.
	code, sink := encode(t, cfg, 0, "mov c, a")
	assert.Empty(code)
	assert.Equal([]string{"error: invalid operands for mov"}, messages(sink))
}

func TestDirectRange(t *testing.T) {
	assert := assert.New(t)

	m, _ := Lookup("mov")
	pos := token.Pos{Path: "test.asm", Line: 1}
	name := token.NewMnemonic("mov", pos)

	for addr := 0; addr <= WORD_MAXIMUM; addr++ {
		sink := &problem.Sink{}
		env := &Env{Config: config.New(), Sink: sink}
		ops := []*token.Operand{
			token.NewName("a", pos),
			token.NewAddress(fmt.Sprintf("%#x", addr), addr, pos),
		}
		code := m.Encode(env, 0, name, ops)
		if addr <= BYTE_MAXIMUM {
			if !assert.Equal([]byte{OPCODE_MOV_A_DIRECT, byte(addr)}, code, addr) {
				return
			}
			continue
		}
		if !assert.Empty(code, addr) {
			return
		}
		if !assert.Equal([]string{"error: value of direct address too big"}, messages(sink), addr) {
			return
		}
	}
}

func TestAbsolutePage(t *testing.T) {
	assert := assert.New(t)

	// The page is that of the instruction following AJMP.
	assert.True(samePage(0x7fe, 0x800))
	assert.False(samePage(0x7fd, 0x800))
	assert.True(samePage(0x7fd, 0x7ff))

	code, sink := encode(t, config.New(), 0x7fe, "ajmp 812h")
	assert.Equal([]byte{0x01, 0x12}, code)
	assert.Equal(0, sink.Len())
}

func jump(t *testing.T, mnemonic string, point uint32, target uint16) ([]byte, *problem.Sink) {
	m, ok := Lookup(mnemonic)
	require.True(t, ok)

	pos := token.Pos{Line: 1}
	sink := &problem.Sink{}
	env := &Env{Config: config.New(), Sink: sink}
	ops := []*token.Operand{token.NewAddress(fmt.Sprintf("%#x", target), int(target), pos)}
	return m.Encode(env, point, token.NewMnemonic(mnemonic, pos), ops), sink
}

func FuzzAbsoluteJump(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(0x7fe), uint16(0x800))
	f.Add(uint16(0x7fd), uint16(0x800))
	f.Add(uint16(0xfffe), uint16(0x0000))

	f.Fuzz(func(t *testing.T, point uint16, target uint16) {
		assert := assert.New(t)

		code, sink := jump(t, "ajmp", uint32(point), target)

		reach := (uint32(target)>>11)&0x1f == ((uint32(point)+2)>>11)&0x1f
		if !reach {
			assert.Empty(code)
			assert.Equal([]string{"error: jump/call address too far for absolute addressing"}, messages(sink))
			return
		}

		if !assert.Len(code, 2) {
			return
		}
		assert.Equal(byte(OPCODE_AJMP), code[0]&0x1f)
		low := uint32(code[0]&0xe0)<<3 | uint32(code[1])
		page := (uint32(point) + 2) & 0xf800
		assert.Equal(uint32(target), page|low)
	})
}

func FuzzShortJump(f *testing.F) {
	f.Add(uint16(0x100), uint16(0x100))
	f.Add(uint16(0x100), uint16(0x181))
	f.Add(uint16(0x100), uint16(0x182))
	f.Add(uint16(0x100), uint16(0x82))
	f.Add(uint16(0x100), uint16(0x81))

	f.Fuzz(func(t *testing.T, point uint16, target uint16) {
		assert := assert.New(t)

		code, sink := jump(t, "sjmp", uint32(point), target)

		delta := int(target) - (int(point) + 2)
		if delta < SHORT_MINIMUM || delta > SHORT_MAXIMUM {
			assert.Empty(code)
			assert.Equal([]string{"error: jump too far for short jump"}, messages(sink))
			return
		}

		if !assert.Len(code, 2) {
			return
		}
		assert.Equal(byte(OPCODE_SJMP), code[0])
		assert.Equal(delta, int(int8(code[1])))
	})
}
