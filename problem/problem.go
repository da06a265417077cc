package problem

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ezrec/asm51/translate"
)

var f = translate.From

// Severity of a problem. Lower values are more severe.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	SEVERITY_ERROR       = Severity(0) // error
	SEVERITY_WARNING     = Severity(1) // warning
	SEVERITY_INFORMATION = Severity(2) // information
)

// Locator is implemented by causes that know their source position.
type Locator interface {
	Path() string
	Line() int
}

// Problem is a single diagnostic.
type Problem struct {
	Severity Severity     // Severity of the problem.
	Message  string       // Translated message.
	Path     string       // Source path, empty if unknown.
	Line     int          // Source line (1-based), 0 if unknown.
	Cause    fmt.Stringer // Offending token, if any.
}

// Compare orders problems by severity, path, line and message.
func Compare(a, b Problem) int {
	return cmp.Or(
		cmp.Compare(a.Severity, b.Severity),
		strings.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
		strings.Compare(a.Message, b.Message),
	)
}

// Sort problems in place by their total order.
func Sort(problems []Problem) {
	slices.SortStableFunc(problems, Compare)
}

func (p Problem) String() string {
	var loc string
	switch {
	case p.Path != "" && p.Line > 0:
		loc = fmt.Sprintf("%s:%d: ", p.Path, p.Line)
	case p.Path != "":
		loc = p.Path + ": "
	case p.Line > 0:
		loc = fmt.Sprintf("line %d: ", p.Line)
	}

	text := loc + p.Severity.String() + ": " + p.Message
	if p.Cause != nil {
		text += f(" (at '%v')", p.Cause.String())
	}

	return text
}
