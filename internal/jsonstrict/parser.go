package jsonstrict

import (
	"strings"
)

// Parse decodes text as strict JSON: no comments, no trailing commas, no
// unquoted keys, and only lowercase true/false/null literals. On success
// it returns the ordered Value AST; on failure a *ParseError whose message
// names the offending position the way CPython's json module does, since
// the repair driver's error-guided transforms are written against that
// message shape.
func Parse(text string) (Value, *ParseError) {
	p := &parser{text: []rune(text)}
	p.skipWhitespace()
	val, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	p.skipWhitespace()
	if p.pos < len(p.text) {
		return Value{}, newError(p.text, p.pos, "Extra data")
	}
	return val, nil
}

// Valid reports whether text parses as strict JSON.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

type parser struct {
	text []rune
	pos  int
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.text) {
		return 0, false
	}
	return p.text[p.pos], true
}

func (p *parser) parseValue() (Value, *ParseError) {
	c, ok := p.peek()
	if !ok {
		return Value{}, newError(p.text, p.pos, "Expecting value")
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case p.matchLiteral("true"):
		return NewBool(true), nil
	case p.matchLiteral("false"):
		return NewBool(false), nil
	case p.matchLiteral("null"):
		return NewNull(), nil
	default:
		return Value{}, newError(p.text, p.pos, "Expecting value")
	}
}

func (p *parser) matchLiteral(word string) bool {
	runes := []rune(word)
	if p.pos+len(runes) > len(p.text) {
		return false
	}
	for i, r := range runes {
		if p.text[p.pos+i] != r {
			return false
		}
	}
	p.pos += len(runes)
	return true
}

func (p *parser) parseObject() (Value, *ParseError) {
	obj := NewObject()
	p.pos++ // consume '{'
	p.skipWhitespace()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipWhitespace()
		c, ok := p.peek()
		if !ok || c != '"' {
			return Value{}, newError(p.text, p.pos, "Expecting property name enclosed in double quotes")
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		p.skipWhitespace()
		c, ok = p.peek()
		if !ok || c != ':' {
			return Value{}, newError(p.text, p.pos, "Expecting ':' delimiter")
		}
		p.pos++
		p.skipWhitespace()
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, val)

		p.skipWhitespace()
		c, ok = p.peek()
		if !ok {
			return Value{}, newError(p.text, p.pos, "Expecting ',' delimiter")
		}
		switch c {
		case ',':
			p.pos++
			continue
		case '}':
			p.pos++
			return obj, nil
		default:
			return Value{}, newError(p.text, p.pos, "Expecting ',' delimiter")
		}
	}
}

func (p *parser) parseArray() (Value, *ParseError) {
	var items []Value
	p.pos++ // consume '['
	p.skipWhitespace()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return NewArray(), nil
	}
	for {
		p.skipWhitespace()
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)

		p.skipWhitespace()
		c, ok := p.peek()
		if !ok {
			return Value{}, newError(p.text, p.pos, "Expecting ',' delimiter")
		}
		switch c {
		case ',':
			p.pos++
			continue
		case ']':
			p.pos++
			return NewArray(items...), nil
		default:
			return Value{}, newError(p.text, p.pos, "Expecting ',' delimiter")
		}
	}
}

const hexDigits = "0123456789abcdefABCDEF"

func (p *parser) parseString() (string, *ParseError) {
	start := p.pos
	p.pos++ // consume opening quote
	var sb strings.Builder
	for {
		if p.pos >= len(p.text) {
			return "", newError(p.text, start, "Unterminated string starting at")
		}
		c := p.text[p.pos]
		switch {
		case c == '"':
			p.pos++
			return sb.String(), nil
		case c == '\\':
			if p.pos+1 >= len(p.text) {
				return "", newError(p.text, start, "Unterminated string starting at")
			}
			esc := p.text[p.pos+1]
			switch esc {
			case '"':
				sb.WriteRune('"')
				p.pos += 2
			case '\\':
				sb.WriteRune('\\')
				p.pos += 2
			case '/':
				sb.WriteRune('/')
				p.pos += 2
			case 'b':
				sb.WriteRune('\b')
				p.pos += 2
			case 'f':
				sb.WriteRune('\f')
				p.pos += 2
			case 'n':
				sb.WriteRune('\n')
				p.pos += 2
			case 'r':
				sb.WriteRune('\r')
				p.pos += 2
			case 't':
				sb.WriteRune('\t')
				p.pos += 2
			case 'u':
				if p.pos+6 > len(p.text) || !isHex4(p.text[p.pos+2:p.pos+6]) {
					return "", newError(p.text, p.pos, "Invalid \\uXXXX escape")
				}
				r := decodeHex4(p.text[p.pos+2 : p.pos+6])
				p.pos += 6
				if isHighSurrogate(r) && p.pos+6 <= len(p.text) &&
					p.text[p.pos] == '\\' && p.text[p.pos+1] == 'u' && isHex4(p.text[p.pos+2:p.pos+6]) {
					low := decodeHex4(p.text[p.pos+2 : p.pos+6])
					if isLowSurrogate(low) {
						combined := 0x10000 + (r-0xD800)*0x400 + (low - 0xDC00)
						sb.WriteRune(combined)
						p.pos += 6
						continue
					}
				}
				sb.WriteRune(r)
			default:
				return "", newError(p.text, p.pos, "Invalid \\escape")
			}
		case c < 0x20:
			return "", newError(p.text, p.pos, "Invalid control character at")
		default:
			sb.WriteRune(c)
			p.pos++
		}
	}
}

func isHex4(r []rune) bool {
	if len(r) != 4 {
		return false
	}
	for _, c := range r {
		if !strings.ContainsRune(hexDigits, c) {
			return false
		}
	}
	return true
}

func decodeHex4(r []rune) rune {
	var n rune
	for _, c := range r {
		n <<= 4
		switch {
		case c >= '0' && c <= '9':
			n |= c - '0'
		case c >= 'a' && c <= 'f':
			n |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			n |= c - 'A' + 10
		}
	}
	return n
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func (p *parser) parseNumber() (Value, *ParseError) {
	start := p.pos
	if c, _ := p.peek(); c == '-' {
		p.pos++
	}
	digitsStart := p.pos
	if c, ok := p.peek(); !ok || c < '0' || c > '9' {
		p.pos = start
		return Value{}, newError(p.text, p.pos, "Expecting value")
	}
	if p.text[p.pos] == '0' {
		p.pos++
	} else {
		for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
			p.pos++
		}
	}
	_ = digitsStart

	if c, ok := p.peek(); ok && c == '.' {
		fracStart := p.pos
		p.pos++
		digitsBegin := p.pos
		for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
			p.pos++
		}
		if p.pos == digitsBegin {
			p.pos = fracStart
		}
	}

	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		expStart := p.pos
		p.pos++
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			p.pos++
		}
		digitsBegin := p.pos
		for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
			p.pos++
		}
		if p.pos == digitsBegin {
			p.pos = expStart
		}
	}

	return NewNumber(string(p.text[start:p.pos])), nil
}
