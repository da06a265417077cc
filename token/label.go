package token

// Label is a code address declaration.
//
// The address of a label is the origin of its segment plus its offset within
// the segment. The origin is fixed once set; the offset moves as the
// instructions before the label change their length.
type Label struct {
	Base
	Offset uint32 // Offset from the segment origin.

	origin    uint32
	hasOrigin bool
}

// NewLabel creates a label token.
func NewLabel(name string, pos Pos) *Label {
	return &Label{Base: Base{kind: KIND_LABEL, value: name, pos: pos}}
}

// Name of the label.
func (l *Label) Name() string {
	return l.value
}

// Origin is the base address of the segment of the label.
func (l *Label) Origin() uint32 {
	return l.origin
}

// HasOrigin is true once the origin is set.
func (l *Label) HasOrigin() bool {
	return l.hasOrigin
}

// SetOrigin sets the segment origin. It may only be done once.
func (l *Label) SetOrigin(origin uint32) (err error) {
	if l.hasOrigin {
		err = ErrOriginSet(l.value)
		return
	}

	l.origin = origin
	l.hasOrigin = true
	return
}

// Address of the label.
func (l *Label) Address() uint32 {
	return l.origin + l.Offset
}

func (l *Label) String() string {
	return l.value + ":"
}
