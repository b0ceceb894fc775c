package mask

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrDanglingEscape is returned when a pattern ends with an unescaped backslash.
var ErrDanglingEscape = errors.New("mask: pattern ends with a dangling escape")

const (
	tokenDigit  = '0'
	tokenLetter = 'a'
	tokenAny    = '*'
	escapeRune  = '\\'
)

type tokenKind uint8

const (
	kindLiteral tokenKind = iota
	kindDigit
	kindLetter
	kindAny
)

type token struct {
	kind tokenKind
	char rune
}

func (t token) accepts(r rune) bool {
	switch t.kind {
	case kindDigit:
		return r >= '0' && r <= '9'
	case kindLetter:
		return unicode.IsLetter(r)
	case kindAny:
		return !unicode.IsControl(r)
	default:
		return false
	}
}

// Value is the synchronized pair produced by a mask. Display always satisfies
// the pattern and Unmasked never holds more runes than Display.
type Value struct {
	Display  string `json:"display"`
	Unmasked string `json:"unmasked"`
}

// Empty reports whether nothing is displayed.
func (v Value) Empty() bool {
	return v.Display == ""
}

// Mask is a compiled pattern. The zero value and masks compiled from an empty
// pattern pass raw input through untouched.
type Mask struct {
	pattern      string
	tokens       []token
	placeholders int
	literal      string
}

// Compile parses pattern into a Mask.
func Compile(pattern string) (*Mask, error) {
	m := &Mask{pattern: pattern}
	if pattern == "" {
		return m, nil
	}

	tokens := make([]token, 0, utf8.RuneCountInString(pattern))
	escaped := false
	for _, r := range pattern {
		if escaped {
			tokens = append(tokens, token{kind: kindLiteral, char: r})
			escaped = false
			continue
		}
		switch r {
		case escapeRune:
			escaped = true
			continue
		case tokenDigit:
			tokens = append(tokens, token{kind: kindDigit})
		case tokenLetter:
			tokens = append(tokens, token{kind: kindLetter})
		case tokenAny:
			tokens = append(tokens, token{kind: kindAny})
		default:
			tokens = append(tokens, token{kind: kindLiteral, char: r})
			continue
		}
		m.placeholders++
	}
	if escaped {
		return nil, fmt.Errorf("%w: %q", ErrDanglingEscape, pattern)
	}

	m.tokens = tokens
	if m.placeholders == 0 {
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteRune(tok.char)
		}
		m.literal = b.String()
	}
	return m, nil
}

// MustCompile mirrors Compile but panics on error. Intended for patterns
// declared as package-level constants.
func MustCompile(pattern string) *Mask {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Resolve compiles pattern and applies it to raw in one step.
func Resolve(pattern, raw string) (Value, error) {
	m, err := Compile(pattern)
	if err != nil {
		return Value{}, err
	}
	return m.Apply(raw), nil
}

// Pattern returns the source pattern.
func (m *Mask) Pattern() string {
	if m == nil {
		return ""
	}
	return m.pattern
}

// Placeholders reports how many input slots the pattern declares.
func (m *Mask) Placeholders() int {
	if m == nil {
		return 0
	}
	return m.placeholders
}

// Passthrough reports whether the mask leaves input untouched.
func (m *Mask) Passthrough() bool {
	return m == nil || len(m.tokens) == 0
}

// Complete reports whether every placeholder of the pattern is filled in v.
func (m *Mask) Complete(v Value) bool {
	if m.Passthrough() {
		return true
	}
	return utf8.RuneCountInString(v.Unmasked) == m.placeholders
}

// Apply conforms raw to the pattern. Literals are only emitted ahead of an
// accepted character, or when the user typed the literal itself, so the
// display never ends in scaffolding nobody asked for. Characters that fit no
// placeholder are dropped. A pattern without placeholders renders as its
// static literal as soon as any input is present.
func (m *Mask) Apply(raw string) Value {
	if m.Passthrough() {
		return Value{Display: raw, Unmasked: raw}
	}
	if raw == "" {
		return Value{}
	}
	if m.placeholders == 0 {
		return Value{Display: m.literal}
	}

	in := []rune(raw)
	pos := 0

	var display, unmasked, pending strings.Builder
	display.Grow(len(m.tokens))

	for _, tok := range m.tokens {
		if pos >= len(in) {
			break
		}

		if tok.kind == kindLiteral {
			pending.WriteRune(tok.char)
			if in[pos] == tok.char {
				pos++
				display.WriteString(pending.String())
				pending.Reset()
			}
			continue
		}

		for pos < len(in) && !tok.accepts(in[pos]) {
			pos++
		}
		if pos >= len(in) {
			break
		}

		display.WriteString(pending.String())
		pending.Reset()
		display.WriteRune(in[pos])
		unmasked.WriteRune(in[pos])
		pos++
	}

	return Value{Display: display.String(), Unmasked: unmasked.String()}
}

// Unmask strips scaffolding from an already displayed value.
func (m *Mask) Unmask(display string) string {
	return m.Apply(display).Unmasked
}
