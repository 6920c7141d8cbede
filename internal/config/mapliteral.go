package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ParseMapLiteral parses an inline map literal of the form
//
//	{product:'Computadora', description:"Alienware", price:1000}
//
// Quoted values stay strings. Bare integer tokens become int64 and the bare
// tokens true/false become bools; any other bare token is kept as a string.
// An empty input yields an empty map.
func ParseMapLiteral(s string) (map[string]any, error) {
	out := make(map[string]any)
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, fmt.Errorf("map literal must be enclosed in braces: %q", s)
	}

	p := &literalParser{src: []rune(s[1 : len(s)-1])}
	p.skipSpace()
	if p.done() {
		return out, nil
	}

	for {
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume(':') {
			return nil, fmt.Errorf("expected ':' after key %q at offset %d", key, p.pos)
		}
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		out[key] = val

		p.skipSpace()
		if p.done() {
			return out, nil
		}
		if !p.consume(',') {
			return nil, fmt.Errorf("expected ',' at offset %d", p.pos)
		}
		p.skipSpace()
	}
}

type literalParser struct {
	src []rune
	pos int
}

func (p *literalParser) done() bool {
	return p.pos >= len(p.src)
}

func (p *literalParser) peek() rune {
	return p.src[p.pos]
}

func (p *literalParser) consume(r rune) bool {
	if !p.done() && p.peek() == r {
		p.pos++
		return true
	}
	return false
}

func (p *literalParser) skipSpace() {
	for !p.done() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

func (p *literalParser) key() (string, error) {
	if p.done() {
		return "", fmt.Errorf("expected key at end of input")
	}
	if r := p.peek(); r == '\'' || r == '"' {
		return p.quoted()
	}
	start := p.pos
	for !p.done() {
		r := p.peek()
		if r == ':' || unicode.IsSpace(r) {
			break
		}
		if r == ',' {
			return "", fmt.Errorf("unexpected ',' in key at offset %d", p.pos)
		}
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("empty key at offset %d", start)
	}
	return string(p.src[start:p.pos]), nil
}

func (p *literalParser) value() (any, error) {
	if p.done() {
		return nil, fmt.Errorf("missing value")
	}
	if r := p.peek(); r == '\'' || r == '"' {
		return p.quoted()
	}
	start := p.pos
	for !p.done() && p.peek() != ',' {
		p.pos++
	}
	token := strings.TrimSpace(string(p.src[start:p.pos]))
	if token == "" {
		return nil, fmt.Errorf("missing value")
	}
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if isInteger(token) {
		if n, err := cast.ToInt64E(decimal(token)); err == nil {
			return n, nil
		}
	}
	return token, nil
}

// quoted reads a quoted string; a doubled quote character escapes itself.
func (p *literalParser) quoted() (string, error) {
	quote := p.peek()
	p.pos++
	var sb strings.Builder
	for !p.done() {
		r := p.peek()
		p.pos++
		if r != quote {
			sb.WriteRune(r)
			continue
		}
		if !p.done() && p.peek() == quote {
			sb.WriteRune(quote)
			p.pos++
			continue
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("unterminated string")
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseInt(s string) (int, error) {
	if !isInteger(s) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return cast.ToIntE(decimal(s))
}

// decimal strips the sign prefix and leading zeros so the value is never
// read as octal.
func decimal(s string) string {
	sign := ""
	switch s[0] {
	case '-':
		sign = "-"
		s = s[1:]
	case '+':
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return sign + s
}
