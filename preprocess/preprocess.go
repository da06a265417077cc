// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package preprocess prepares 8051 assembly source for the tokenizer.
//
// Each line has its comment removed, 'x' character literals replaced by their
// values, its case folded outside of strings, $(expr) evaluated, and equates
// substituted. Equate definitions become blank lines, so the output has
// exactly one line per input line.
package preprocess

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
	"github.com/ezrec/asm51/tokenizer"
)

const (
	EQUATE_DIRECTIVE = ".equ"
	EQUATE_KEYWORD   = "equ"
	EQUATE_LINENO    = "lineno"
)

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reWord       = regexp.MustCompile(`[a-z0-9_?]+`)
)

// Preprocessor is the source preprocessor.
type Preprocessor struct {
	Path    string            // Source path, for problems.
	Verbose bool              // If set, verbosely logs each line.
	Equate  map[string]string // Equates, after Process.

	predefine map[string]string
}

// line is the cause of a preprocessing problem.
type line struct {
	text string
	pos  token.Pos
}

func (ln line) Path() string   { return ln.pos.Path }
func (ln line) Line() int      { return ln.pos.Line }
func (ln line) String() string { return ln.text }

// Predefine an equate before processing.
func (pp *Preprocessor) Predefine(equ string, value string) {
	if pp.predefine == nil {
		pp.predefine = map[string]string{}
	}
	pp.predefine[strings.ToLower(equ)] = value
}

// outside applies fn to the parts of text that are not in double quotes.
func outside(text string, fn func(string) string) string {
	parts := strings.Split(text, `"`)
	for n := 0; n < len(parts); n += 2 {
		parts[n] = fn(parts[n])
	}
	return strings.Join(parts, `"`)
}

// character replaces a 'x' literal by its value.
func character(word string) string {
	str := word[1 : len(word)-1]
	if str[0] == '\\' {
		switch str[1:] {
		case "\\":
			str = "\\"
		case "n":
			str = "\n"
		case "r":
			str = "\r"
		case "t":
			str = "\t"
		case "0":
			str = "\x00"
		case "e":
			str = "\033"
		default:
			return word
		}
	} else if len(str) != 1 {
		return word
	}
	return fmt.Sprintf("%v", str[0])
}

// evaluate does compile-time $(...) evaluations.
func (pp *Preprocessor) evaluate(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "preprocess"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range pp.Equate {
		if !tokenizer.IsSymbol(key) {
			continue
		}
		number, parseErr := tokenizer.ParseNumber(str)
		if parseErr != nil {
			// Not every equate is a number.
			continue
		}
		pred[key] = starlark.MakeInt64(number)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = rc.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}

// substitute replaces equate names by their values.
func (pp *Preprocessor) substitute(text string) string {
	return outside(text, func(part string) string {
		return reWord.ReplaceAllStringFunc(part, func(word string) string {
			if word[0] >= '0' && word[0] <= '9' {
				return word
			}
			if value, ok := pp.Equate[word]; ok && word != EQUATE_LINENO {
				return value
			}
			return word
		})
	})
}

// equate handles an equate definition, returning false if the line is not
// one.
func (pp *Preprocessor) equate(text string, pos token.Pos, sink *problem.Sink) bool {
	words := strings.Fields(text)

	var name, value string
	switch {
	case len(words) > 0 && words[0] == EQUATE_DIRECTIVE:
		if len(words) != 3 {
			sink.Errorf(line{text, pos}, "equate expects a name and a value")
			return true
		}
		name, value = words[1], words[2]
	case len(words) > 1 && words[1] == EQUATE_KEYWORD:
		if len(words) != 3 {
			sink.Errorf(line{text, pos}, "equate expects a name and a value")
			return true
		}
		name, value = words[0], words[2]
	default:
		return false
	}

	switch {
	case !tokenizer.IsSymbol(name):
		sink.Errorf(line{name, pos}, "'%v' is not a valid equate name", name)
	case token.IsReserved(name):
		sink.Errorf(line{name, pos}, "reserved name '%v' cannot be an equate", name)
	case pp.Equate[name] != "":
		sink.Errorf(line{name, pos}, "equate '%v' duplicated", name)
	default:
		pp.Equate[name] = pp.substitute(value)
	}

	return true
}

// processLine preprocesses a single line.
func (pp *Preprocessor) processLine(text string, pos token.Pos, sink *problem.Sink) string {
	text = strings.TrimSpace(tokenizer.StripComment(text))
	text = outside(text, func(part string) string {
		return reCharacter.ReplaceAllStringFunc(part, character)
	})
	text = tokenizer.FoldCase(text)

	pp.Equate[EQUATE_LINENO] = fmt.Sprint(pos.Line)

	failed := false
	text = outside(text, func(part string) string {
		return reExpression.ReplaceAllStringFunc(part, func(str string) string {
			expr := str[2 : len(str)-1]
			value, err := pp.evaluate(expr)
			if err != nil {
				sink.Errorf(line{str, pos}, "$(%v) is not a valid expression: %v", expr, err.Error())
				failed = true
				return str
			}
			return fmt.Sprint(value)
		})
	})
	if failed {
		return ""
	}

	if pp.equate(text, pos, sink) {
		return ""
	}

	return pp.substitute(text)
}

// Process preprocesses all of the lines of a source.
func (pp *Preprocessor) Process(input io.Reader, sink *problem.Sink) (lines []string, err error) {
	pp.Equate = maps.Clone(pp.predefine)
	if pp.Equate == nil {
		pp.Equate = map[string]string{}
	}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if pp.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		lines = append(lines, pp.processLine(text, token.Pos{Path: pp.Path, Line: lineno}, sink))
	}

	err = scanner.Err()
	return
}
