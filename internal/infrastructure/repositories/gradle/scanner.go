package gradle

import (
	"strings"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

type eventKind int

const (
	eventOpen eventKind = iota
	eventClose
	eventStatement
)

// event is one structural element of a Kotlin DSL script: a block header
// followed by "{", a closing "}", or a statement inside the current block.
type event struct {
	kind eventKind
	text string
	line int
}

// tokenize splits a script into block and statement events. Comments are
// dropped; string literals are kept verbatim; newlines inside parentheses
// do not end a statement.
func tokenize(content, source string) ([]event, error) {
	var (
		events     []event
		buf        strings.Builder
		line       = 1
		startLine  = 0
		parenDepth = 0
	)
	runes := []rune(content)

	write := func(r rune) {
		if startLine == 0 && r != ' ' && r != '\t' && r != '\r' {
			startLine = line
		}
		buf.WriteRune(r)
	}
	take := func() (string, int) {
		text := strings.TrimSpace(buf.String())
		at := startLine
		if at == 0 {
			at = line
		}
		buf.Reset()
		startLine = 0
		return text, at
	}
	flush := func() {
		if text, at := take(); text != "" {
			events = append(events, event{kind: eventStatement, text: text, line: at})
		}
	}
	fail := func(reason string) error {
		return &entities.ParseError{Source: source, Line: line, Reason: reason}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case r == '"':
			end := stringEnd(runes, i)
			if end < 0 {
				return nil, fail("unterminated string literal")
			}
			for _, c := range runes[i : end+1] {
				if c == '\n' {
					line++
				}
				write(c)
			}
			i = end
		case r == '/' && next == '/':
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
		case r == '/' && next == '*':
			closed := false
			for i += 2; i+1 < len(runes); i++ {
				if runes[i] == '\n' {
					line++
				}
				if runes[i] == '*' && runes[i+1] == '/' {
					i++
					closed = true
					break
				}
			}
			if !closed {
				return nil, fail("unterminated block comment")
			}
		case r == '(':
			parenDepth++
			write(r)
		case r == ')':
			parenDepth--
			if parenDepth < 0 {
				return nil, fail("unbalanced ')'")
			}
			write(r)
		case r == '{' && parenDepth == 0:
			text, at := take()
			events = append(events, event{kind: eventOpen, text: text, line: at})
		case r == '}' && parenDepth == 0:
			flush()
			events = append(events, event{kind: eventClose, line: line})
		case r == '\n':
			if parenDepth == 0 {
				flush()
			} else {
				write(' ')
			}
			line++
		case r == ';' && parenDepth == 0:
			flush()
		default:
			write(r)
		}
	}

	if parenDepth != 0 {
		return nil, fail("unbalanced '('")
	}
	flush()
	return events, nil
}

// stringEnd returns the index of the quote closing the literal opened at
// start, or -1. Triple-quoted raw strings may span lines; plain ones may not.
func stringEnd(runes []rune, start int) int {
	if start+2 < len(runes) && runes[start+1] == '"' && runes[start+2] == '"' {
		for i := start + 3; i+2 < len(runes); i++ {
			if runes[i] == '"' && runes[i+1] == '"' && runes[i+2] == '"' {
				return i + 2
			}
		}
		return -1
	}

	for i := start + 1; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '"':
			return i
		case '\n':
			return -1
		}
	}
	return -1
}
