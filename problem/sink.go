package problem

import (
	"fmt"
	"slices"

	"golang.org/x/text/message"
)

// Sink accumulates problems for one assembler run.
//
// A Sink is not safe for concurrent use; independent runs use independent
// sinks.
type Sink struct {
	Path string // Default path for problems whose cause has no location.

	problems []Problem
}

// Report adds a problem as is.
func (s *Sink) Report(p Problem) {
	s.problems = append(s.problems, p)
}

// Add reports a problem of the given severity. The path and line are taken
// from the cause when it implements Locator.
func (s *Sink) Add(severity Severity, cause fmt.Stringer, key message.Reference, args ...any) {
	p := Problem{
		Severity: severity,
		Message:  f(key, args...),
		Path:     s.Path,
		Cause:    cause,
	}

	if loc, ok := cause.(Locator); ok {
		if path := loc.Path(); path != "" {
			p.Path = path
		}
		p.Line = loc.Line()
	}

	s.Report(p)
}

// Errorf reports an error.
func (s *Sink) Errorf(cause fmt.Stringer, key message.Reference, args ...any) {
	s.Add(SEVERITY_ERROR, cause, key, args...)
}

// Warnf reports a warning.
func (s *Sink) Warnf(cause fmt.Stringer, key message.Reference, args ...any) {
	s.Add(SEVERITY_WARNING, cause, key, args...)
}

// Infof reports an informational message.
func (s *Sink) Infof(cause fmt.Stringer, key message.Reference, args ...any) {
	s.Add(SEVERITY_INFORMATION, cause, key, args...)
}

// Merge appends all of the problems from another sink.
func (s *Sink) Merge(other *Sink) {
	if other == nil {
		return
	}
	s.problems = append(s.problems, other.problems...)
}

// Len is the number of problems reported.
func (s *Sink) Len() int {
	return len(s.problems)
}

// Count the problems of a severity.
func (s *Sink) Count(severity Severity) (count int) {
	for _, p := range s.problems {
		if p.Severity == severity {
			count++
		}
	}

	return
}

// HasErrors is true if any error was reported.
func (s *Sink) HasErrors() bool {
	return s.Count(SEVERITY_ERROR) != 0
}

// Problems returns a sorted copy of the problems.
func (s *Sink) Problems() (problems []Problem) {
	problems = slices.Clone(s.problems)
	Sort(problems)

	return
}

// Err returns nil if there are no errors, or an ErrProblems.
func (s *Sink) Err() error {
	count := s.Count(SEVERITY_ERROR)
	if count == 0 {
		return nil
	}

	return ErrProblems(count)
}
