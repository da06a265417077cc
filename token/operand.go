package token

import (
	"strconv"
	"strings"
)

// OperandKind is the semantic class of an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_CONSTANT        = OperandKind(0) // constant
	OPERAND_ADDRESS         = OperandKind(1) // address
	OPERAND_NEGATED_ADDRESS = OperandKind(2) // negated address
	OPERAND_NAME            = OperandKind(3) // name
	OPERAND_INDIRECT_NAME   = OperandKind(4) // indirect name
	OPERAND_ADDRESS_OFFSET  = OperandKind(5) // address offset
)

// AddressSpace of an address operand.
type AddressSpace int

const (
	SPACE_ANY  = AddressSpace(0) // Plain number, the instruction decides.
	SPACE_BYTE = AddressSpace(1) // Named byte register.
	SPACE_BIT  = AddressSpace(2) // Bit address, 'byte.bit' or a named bit.
)

// Reserved operand names.
const (
	NAME_A    = "a"
	NAME_C    = "c"
	NAME_AB   = "ab"
	NAME_DPTR = "dptr"

	INDIRECT_A_DPTR = "a+dptr"
	INDIRECT_A_PC   = "a+pc"
)

// Operand is an instruction operand.
//
// Operands are immutable, except that a symbolic reference may be given its
// numeric value once the symbol is known (see ToNumber).
type Operand struct {
	Base
	class    OperandKind
	space    AddressSpace
	number   int
	name     string // Register or symbol name, without '@'.
	symbol   string // Referenced symbol, if any.
	resolved bool
}

func newOperand(class OperandKind, text string, pos Pos) *Operand {
	return &Operand{
		Base:  Base{kind: KIND_OPERAND, value: text, pos: pos},
		class: class,
	}
}

// NewConstant creates an immediate '#N' operand.
func NewConstant(text string, value int, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_CONSTANT, text, pos)
	op.number = value
	return
}

// NewSymbolConstant creates an immediate '#symbol' operand.
func NewSymbolConstant(text string, symbol string, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_CONSTANT, text, pos)
	op.symbol = symbol
	return
}

// NewAddress creates a direct address operand (byte, bit or code address).
func NewAddress(text string, value int, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_ADDRESS, text, pos)
	op.number = value
	return
}

// NewByteAddress creates a direct address operand that can only be a byte.
func NewByteAddress(text string, value int, pos Pos) (op *Operand) {
	op = NewAddress(text, value, pos)
	op.space = SPACE_BYTE
	return
}

// NewBitAddress creates a direct address operand that can only be a bit.
func NewBitAddress(text string, value int, pos Pos) (op *Operand) {
	op = NewAddress(text, value, pos)
	op.space = SPACE_BIT
	return
}

// NewNegatedAddress creates a '/bit' operand.
func NewNegatedAddress(text string, value int, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_NEGATED_ADDRESS, text, pos)
	op.space = SPACE_BIT
	op.number = value
	return
}

// NewAddressOffset creates a '+N' or '-N' operand.
func NewAddressOffset(text string, offset int, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_ADDRESS_OFFSET, text, pos)
	op.number = offset
	return
}

// NewName creates a name operand: a reserved name or a symbol reference.
func NewName(text string, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_NAME, text, pos)
	op.name = text
	if !IsReserved(text) {
		op.symbol = text
	}
	return
}

// NewIndirect creates an '@name' operand.
func NewIndirect(text string, pos Pos) (op *Operand) {
	op = newOperand(OPERAND_INDIRECT_NAME, text, pos)
	op.name = strings.TrimPrefix(text, "@")
	return
}

// IsReserved is true for the names of the 8051 registers that are operands
// in their own right.
func IsReserved(name string) bool {
	switch name {
	case NAME_A, NAME_C, NAME_AB, NAME_DPTR:
		return true
	}
	_, ok := registerNumber(name)
	return ok
}

// IsIndirect is true for names that may follow '@'.
func IsIndirect(name string) bool {
	switch name {
	case NAME_DPTR, INDIRECT_A_DPTR, INDIRECT_A_PC:
		return true
	}
	_, ok := registerNumber(name)
	return ok
}

// registerNumber decodes 'rN'. Any number is accepted so that range errors
// can name the register.
func registerNumber(name string) (n int, ok bool) {
	if len(name) < 2 || name[0] != 'r' {
		return
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return
		}
	}
	n, err := strconv.Atoi(name[1:])
	ok = err == nil
	return
}

// Class is the operand kind.
func (op *Operand) Class() OperandKind {
	return op.class
}

// Space is the address space an address operand is restricted to.
func (op *Operand) Space() AddressSpace {
	return op.space
}

// Number is the numeric value of a constant, address or offset.
func (op *Operand) Number() int {
	return op.number
}

// Name is the register or symbol name of a name or indirect operand.
func (op *Operand) Name() string {
	return op.name
}

// Is is true if the operand is the given name (not indirect).
func (op *Operand) Is(name string) bool {
	return op.class == OPERAND_NAME && op.name == name
}

// IsIndirect is true if the operand is '@name'.
func (op *Operand) IsIndirect(name string) bool {
	return op.class == OPERAND_INDIRECT_NAME && op.name == name
}

// Register returns N for a 'rN' name operand.
func (op *Operand) Register() (n int, ok bool) {
	if op.class != OPERAND_NAME {
		return
	}
	return registerNumber(op.name)
}

// IndirectRegister returns N for a '@rN' operand.
func (op *Operand) IndirectRegister() (n int, ok bool) {
	if op.class != OPERAND_INDIRECT_NAME {
		return
	}
	return registerNumber(op.name)
}

// Symbol is the name of the symbol referenced by the operand, if any.
func (op *Operand) Symbol() string {
	return op.symbol
}

// Reference is true if the operand refers to a symbol.
func (op *Operand) Reference() bool {
	return op.symbol != ""
}

// Resolved is true if the operand has a numeric value.
func (op *Operand) Resolved() bool {
	return op.symbol == "" || op.resolved
}

// ToNumber gives a symbolic reference its numeric value. A name becomes an
// address; a symbolic constant stays a constant. The symbol is kept so the
// reference can be resolved again when the layout moves.
func (op *Operand) ToNumber(value int) {
	if op.symbol == "" {
		return
	}

	if op.class == OPERAND_NAME {
		op.class = OPERAND_ADDRESS
	}
	op.number = value
	op.resolved = true
}

// AsAddress converts a register name to its direct address in a register
// bank. Addresses convert to themselves.
func (op *Operand) AsAddress(bank int, hasBank bool) (addr int, err error) {
	if op.class == OPERAND_ADDRESS {
		addr = op.number
		return
	}

	n, ok := op.Register()
	if !ok {
		err = ErrNotRegister
		return
	}
	if !hasBank {
		err = ErrNoBank(op.name)
		return
	}

	addr = bank*8 + n
	return
}

// WithAddress returns a copy of the operand, at the same position, as a
// direct address in an address space.
func (op *Operand) WithAddress(addr int, space AddressSpace) *Operand {
	return &Operand{
		Base:   op.Base,
		class:  OPERAND_ADDRESS,
		space:  space,
		number: addr,
	}
}
