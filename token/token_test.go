package token

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	pos := Pos{Line: 1}
	tokens := []Token{
		NewLabel("start", pos),
		NewName("r1", pos),
		NewMnemonic("mov", pos),
		NewDirective(DIRECTIVE_ORG, pos),
		NewName("a", pos),
		NewMnemonic("add", pos),
	}

	slices.SortFunc(tokens, Compare)

	var order []string
	for _, tok := range tokens {
		order = append(order, tok.Kind().String()+":"+tok.Value())
	}

	assert.Equal([]string{
		"mnemonic:add",
		"mnemonic:mov",
		"operand:a",
		"operand:r1",
		"label:start",
		"directive:org",
	}, order)
}

func TestOperandNames(t *testing.T) {
	assert := assert.New(t)

	pos := Pos{Path: "x.asm", Line: 4}

	a := NewName("a", pos)
	assert.True(a.Is(NAME_A))
	assert.False(a.Reference())
	assert.True(a.Resolved())
	assert.Equal("x.asm", a.Path())
	assert.Equal(4, a.Line())

	r7 := NewName("r7", pos)
	n, ok := r7.Register()
	assert.True(ok)
	assert.Equal(7, n)
	assert.False(r7.Reference())

	r9 := NewName("r9", pos)
	n, ok = r9.Register()
	assert.True(ok)
	assert.Equal(9, n)

	ri := NewIndirect("@r1", pos)
	n, ok = ri.IndirectRegister()
	assert.True(ok)
	assert.Equal(1, n)
	_, ok = ri.Register()
	assert.False(ok)
	assert.True(NewIndirect("@a+dptr", pos).IsIndirect(INDIRECT_A_DPTR))

	sym := NewName("loop", pos)
	assert.True(sym.Reference())
	assert.False(sym.Resolved())
	_, ok = sym.Register()
	assert.False(ok)

	assert.True(IsReserved("dptr"))
	assert.True(IsReserved("r12"))
	assert.False(IsReserved("rx"))
	assert.False(IsReserved("r"))
	assert.True(IsIndirect("a+pc"))
	assert.False(IsIndirect("a"))
}

func TestToNumber(t *testing.T) {
	assert := assert.New(t)

	pos := Pos{Line: 1}

	sym := NewName("loop", pos)
	sym.ToNumber(0x1234)
	assert.Equal(OPERAND_ADDRESS, sym.Class())
	assert.Equal(0x1234, sym.Number())
	assert.Equal("loop", sym.Symbol())
	assert.True(sym.Resolved())

	sym.ToNumber(0x1236)
	assert.Equal(OPERAND_ADDRESS, sym.Class())
	assert.Equal(0x1236, sym.Number())

	cons := NewSymbolConstant("#table", "table", pos)
	cons.ToNumber(0x200)
	assert.Equal(OPERAND_CONSTANT, cons.Class())
	assert.Equal(0x200, cons.Number())

	reg := NewName("a", pos)
	reg.ToNumber(5)
	assert.Equal(OPERAND_NAME, reg.Class())
	assert.Equal(0, reg.Number())
}

func TestAsAddress(t *testing.T) {
	assert := assert.New(t)

	pos := Pos{Line: 1}

	addr, err := NewName("r3", pos).AsAddress(2, true)
	assert.NoError(err)
	assert.Equal(0x13, addr)

	_, err = NewName("r3", pos).AsAddress(0, false)
	assert.Equal(ErrNoBank("r3"), err)

	_, err = NewName("a", pos).AsAddress(0, true)
	assert.Equal(ErrNotRegister, err)

	assert.Equal(SPACE_BIT, NewBitAddress("cy", 0xd7, pos).Space())
	assert.Equal(SPACE_BIT, NewNegatedAddress("/cy", 0xd7, pos).Space())

	addr, err = NewAddress("30h", 0x30, pos).AsAddress(0, false)
	assert.NoError(err)
	assert.Equal(0x30, addr)

	sub := NewName("a", pos).WithAddress(0xe0, SPACE_BYTE)
	assert.Equal(OPERAND_ADDRESS, sub.Class())
	assert.Equal(SPACE_BYTE, sub.Space())
	assert.Equal(0xe0, sub.Number())
	assert.Equal("a", sub.Value())
}

func TestLabel(t *testing.T) {
	assert := assert.New(t)

	label := NewLabel("start", Pos{Line: 2})
	assert.False(label.HasOrigin())
	assert.NoError(label.SetOrigin(0x100))
	assert.Equal(ErrOriginSet("start"), label.SetOrigin(0x200))
	assert.Equal(uint32(0x100), label.Origin())

	label.Offset = 0x10
	assert.Equal(uint32(0x110), label.Address())
	assert.Equal("start:", label.String())
}

func TestDirective(t *testing.T) {
	assert := assert.New(t)

	ds := NewDirective(DIRECTIVE_DS, Pos{Line: 1})
	ds.Number = 3
	assert.True(ds.Raw())
	assert.Equal([]byte{0, 0, 0}, ds.Bytes())
	assert.Equal(".ds", ds.String())

	org := NewDirective(DIRECTIVE_ORG, Pos{Line: 1})
	assert.False(org.Raw())
	assert.Nil(org.Bytes())
	assert.Equal("org", org.Value())
}
