// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tokenizer

import (
	"regexp"
	"strings"

	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/sfr"
	"github.com/ezrec/asm51/token"
)

var (
	reLabel     = regexp.MustCompile(`^([a-z_?][a-z0-9_?]*)\s*:`)
	reDirective = regexp.MustCompile(`^[.$]([a-z]+)(?:\s+(.*))?$`)
	reMnemonic  = regexp.MustCompile(`^([a-z][a-z0-9]*)(?:\s+(.*))?$`)
	reSymbol    = regexp.MustCompile(`^[a-z_?][a-z0-9_?]*$`)
)

// Tokenizer is a line-oriented lexer for 8051 assembly.
type Tokenizer struct {
	Path string // Path reported by tokens, changed by the .file directive.
}

// fragment is the cause of a lexical problem.
type fragment struct {
	text string
	pos  token.Pos
}

func (fr fragment) Path() string   { return fr.pos.Path }
func (fr fragment) Line() int      { return fr.pos.Line }
func (fr fragment) String() string { return fr.text }

// Tokenize converts preprocessed source lines into a flat token stream.
// Line numbers are 1-based indexes into lines. Problems are reported to the
// sink; a line with problems contributes whatever tokens could be made.
func (tz *Tokenizer) Tokenize(lines []string, sink *problem.Sink) (tokens []token.Token) {
	for n, text := range lines {
		pos := token.Pos{Path: tz.Path, Line: n + 1}

		line, end := tz.tokenizeLine(text, pos, sink)
		tokens = append(tokens, line...)
		if end {
			break
		}
	}

	return
}

// tokenizeLine tokenizes one line. It returns true after an .end directive.
func (tz *Tokenizer) tokenizeLine(text string, pos token.Pos, sink *problem.Sink) (tokens []token.Token, end bool) {
	line := strings.TrimSpace(StripComment(text))
	line = FoldCase(line)

	if match := reLabel.FindStringSubmatch(line); match != nil {
		name := match[1]
		if token.IsReserved(name) {
			sink.Errorf(fragment{name, pos}, "reserved name '%v' cannot be a label", name)
		} else if _, ok := sfr.Lookup(name); ok {
			sink.Errorf(fragment{name, pos}, "SFR name '%v' cannot be a label", name)
		} else {
			tokens = append(tokens, token.NewLabel(name, pos))
		}
		line = strings.TrimSpace(line[len(match[0]):])
	}

	if len(line) == 0 {
		return
	}

	if match := reDirective.FindStringSubmatch(line); match != nil {
		dir := tz.directive(match[1], match[2], pos, sink)
		if dir != nil {
			tokens = append(tokens, dir)
			end = dir.Directive == token.DIRECTIVE_END
		}
		return
	}

	match := reMnemonic.FindStringSubmatch(line)
	if match == nil {
		sink.Errorf(fragment{line, pos}, "Expected mnemonic or comment")
		return
	}

	name := token.NewMnemonic(match[1], pos)
	tokens = append(tokens, name)

	if len(strings.TrimSpace(match[2])) == 0 {
		return
	}

	for _, text := range splitOperands(match[2]) {
		text = strings.Join(strings.Fields(text), "")
		if len(text) == 0 {
			sink.Errorf(name, "empty operand")
			name.Broken = true
			continue
		}
		op := Classify(text, pos, sink)
		if op == nil {
			name.Broken = true
			continue
		}
		tokens = append(tokens, op)
	}

	return
}

// IsSymbol is true if text is a valid symbol name.
func IsSymbol(text string) bool {
	return reSymbol.MatchString(text)
}

// StripComment removes a ';' comment that is not inside quotes.
func StripComment(line string) string {
	var quote rune
	for n, c := range line {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ';':
			return line[:n]
		}
	}
	return line
}

// FoldCase lowercases everything outside double quotes.
func FoldCase(line string) string {
	var sb strings.Builder
	quoted := false
	for _, c := range line {
		if c == '"' {
			quoted = !quoted
		}
		if !quoted && c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// splitOperands splits on commas that are not inside quotes.
func splitOperands(s string) (parts []string) {
	var quote rune
	last := 0
	for n, c := range s {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ',':
			parts = append(parts, strings.TrimSpace(s[last:n]))
			last = n + 1
		}
	}
	parts = append(parts, strings.TrimSpace(s[last:]))
	return
}
