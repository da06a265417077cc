package token

import (
	"cmp"
	"strings"
)

// Kind of token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_MNEMONIC  = Kind(0) // mnemonic
	KIND_OPERAND   = Kind(1) // operand
	KIND_LABEL     = Kind(2) // label
	KIND_DIRECTIVE = Kind(3) // directive
)

// Token is a lexical unit of a source line.
type Token interface {
	Kind() Kind     // Kind of token.
	Value() string  // Source text, case folded.
	Line() int      // Source line, 1-based.
	Path() string   // Source path.
	String() string // Printable form, for diagnostics.
}

// Pos is a source position.
type Pos struct {
	Path string
	Line int
}

// Base is the data common to all tokens.
type Base struct {
	kind  Kind
	value string
	pos   Pos
}

func (b *Base) Kind() Kind {
	return b.kind
}

func (b *Base) Value() string {
	return b.value
}

func (b *Base) Line() int {
	return b.pos.Line
}

func (b *Base) Path() string {
	return b.pos.Path
}

func (b *Base) String() string {
	return b.value
}

// Compare orders tokens by kind, then by value.
func Compare(a, b Token) int {
	return cmp.Or(
		cmp.Compare(a.Kind(), b.Kind()),
		strings.Compare(a.Value(), b.Value()),
	)
}

// Mnemonic is the instruction name token.
type Mnemonic struct {
	Base
	Broken bool // Set when an operand of the instruction failed to tokenize.
}

// NewMnemonic creates a mnemonic name token.
func NewMnemonic(name string, pos Pos) *Mnemonic {
	return &Mnemonic{Base: Base{kind: KIND_MNEMONIC, value: name, pos: pos}}
}
