package tokenizer

import (
	"strconv"
	"strings"

	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/token"
)

// directive decodes a directive line. It returns nil after reporting a
// problem.
func (tz *Tokenizer) directive(name string, args string, pos token.Pos, sink *problem.Sink) (dir *token.Directive) {
	kind, ok := token.Directives[name]
	if !ok {
		sink.Errorf(fragment{"." + name, pos}, "unknown directive '.%v'", name)
		return
	}

	var parts []string
	if args = strings.TrimSpace(args); len(args) != 0 {
		parts = splitOperands(args)
	}

	dir = token.NewDirective(kind, pos)

	want := func(count int) bool {
		if len(parts) != count {
			sink.Errorf(dir, "directive %v expects %v argument(s)", dir.String(), count)
			return false
		}
		return true
	}

	switch kind {
	case token.DIRECTIVE_ORG, token.DIRECTIVE_DS:
		if !want(1) {
			return nil
		}
		value, ok := number(parts[0], ADDRESS_MAX, pos, sink)
		if !ok {
			return nil
		}
		dir.Number = value
	case token.DIRECTIVE_DB:
		if len(parts) == 0 {
			sink.Errorf(dir, "directive %v expects data", dir.String())
			return nil
		}
		for _, part := range parts {
			if strings.HasPrefix(part, `"`) {
				text, err := strconv.Unquote(part)
				if err != nil {
					sink.Errorf(fragment{part, pos}, "invalid string %v", part)
					return nil
				}
				dir.Data = append(dir.Data, text...)
				continue
			}
			value, ok := number(part, BYTE_MAX, pos, sink)
			if !ok {
				return nil
			}
			dir.Data = append(dir.Data, byte(value))
		}
	case token.DIRECTIVE_DW:
		if len(parts) == 0 {
			sink.Errorf(dir, "directive %v expects data", dir.String())
			return nil
		}
		for _, part := range parts {
			value, ok := number(part, CONSTANT_MAX, pos, sink)
			if !ok {
				return nil
			}
			dir.Data = append(dir.Data, byte(value>>8), byte(value))
		}
	case token.DIRECTIVE_FILE:
		if !want(1) {
			return nil
		}
		path := parts[0]
		if strings.HasPrefix(path, `"`) {
			var err error
			path, err = strconv.Unquote(path)
			if err != nil {
				sink.Errorf(fragment{parts[0], pos}, "invalid string %v", parts[0])
				return nil
			}
		}
		dir.Text = path
		tz.Path = path
	case token.DIRECTIVE_END:
		if !want(0) {
			return nil
		}
	}

	return
}
