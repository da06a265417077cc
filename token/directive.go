package token

// DirectiveKind is the type of assembler directive.
type DirectiveKind int

//go:generate go tool stringer -linecomment -type=DirectiveKind
const (
	DIRECTIVE_ORG  = DirectiveKind(0) // org
	DIRECTIVE_DB   = DirectiveKind(1) // db
	DIRECTIVE_DW   = DirectiveKind(2) // dw
	DIRECTIVE_DS   = DirectiveKind(3) // ds
	DIRECTIVE_FILE = DirectiveKind(4) // file
	DIRECTIVE_END  = DirectiveKind(5) // end
)

// Directives maps directive names to their kinds.
var Directives = map[string]DirectiveKind{
	"org":  DIRECTIVE_ORG,
	"db":   DIRECTIVE_DB,
	"dw":   DIRECTIVE_DW,
	"ds":   DIRECTIVE_DS,
	"file": DIRECTIVE_FILE,
	"end":  DIRECTIVE_END,
}

// Directive is an assembler directive with its decoded arguments.
type Directive struct {
	Base
	Directive DirectiveKind
	Number    int    // Address for org, count for ds.
	Data      []byte // Payload of db and dw.
	Text      string // File name for file.
}

// NewDirective creates a directive token.
func NewDirective(kind DirectiveKind, pos Pos) *Directive {
	return &Directive{
		Base:      Base{kind: KIND_DIRECTIVE, value: kind.String(), pos: pos},
		Directive: kind,
	}
}

// Raw is true for directives that emit bytes into code memory.
func (d *Directive) Raw() bool {
	switch d.Directive {
	case DIRECTIVE_DB, DIRECTIVE_DW, DIRECTIVE_DS:
		return true
	}
	return false
}

// Bytes returns the bytes emitted by a raw data directive.
func (d *Directive) Bytes() []byte {
	switch d.Directive {
	case DIRECTIVE_DB, DIRECTIVE_DW:
		return d.Data
	case DIRECTIVE_DS:
		return make([]byte, d.Number)
	}
	return nil
}

func (d *Directive) String() string {
	return "." + d.value
}
