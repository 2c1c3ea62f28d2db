package parser

import "strconv"

// parser holds the state of a single parse call: the input, a cursor, and
// the furthest failure seen so far (position plus the token kinds that were
// expected there). Alternatives restore the cursor when they fail; the
// failure record is kept so the final error can point at the right spot.
type parser struct {
	input string
	pos   int

	failPos  int
	expected []string

	// err is set once a committed token turns out malformed; it aborts the
	// whole parse with no further backtracking.
	err *ParseError
}

func newParser(input string) *parser {
	return &parser{input: input, failPos: -1}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// skipSpaces skips the plain space character, the only ignorable separator.
// Tabs and newlines are not whitespace in this notation.
func (p *parser) skipSpaces() {
	for !p.eof() && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// fail records that the token kind named by expected was looked for (and not
// found) at the current position. Only the furthest failure is kept. Always
// returns false so callers can "return p.fail(...)".
func (p *parser) fail(expected string) bool {
	if p.pos > p.failPos {
		p.failPos = p.pos
		p.expected = p.expected[:0]
	}
	if p.pos == p.failPos {
		for _, e := range p.expected {
			if e == expected {
				return false
			}
		}
		p.expected = append(p.expected, expected)
	}
	return false
}

// abort stops the parse with a hard error. Used once a committed token
// (a group's "(", a parameterized action's keyword) cannot be completed.
func (p *parser) abort(kind ErrorKind, pos int, expected ...string) {
	if p.err == nil {
		p.err = &ParseError{Kind: kind, Pos: pos, Expected: expected}
	}
}

// abortHere aborts at the cursor, classifying end-of-input failures as
// IncompleteRequest and everything else as UnexpectedToken.
func (p *parser) abortHere(expected ...string) {
	kind := UnexpectedToken
	if p.eof() {
		kind = IncompleteRequest
	}
	p.abort(kind, p.pos, expected...)
}

// keyword matches a literal case-insensitively and consumes it. Keywords are
// matched exactly as given, with no implicit word boundary and no internal
// space skipping.
func (p *parser) keyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.input) {
		return false
	}
	for i := 0; i < len(kw); i++ {
		if lower(p.input[p.pos+i]) != lower(kw[i]) {
			return false
		}
	}
	p.pos = end
	return true
}

// positiveInt recognizes a non-zero digit followed by any digits. A leading
// zero produces no token.
func (p *parser) positiveInt() (int, bool) {
	start := p.pos
	if p.eof() || p.input[p.pos] < '1' || p.input[p.pos] > '9' {
		return 0, false
	}
	p.pos++
	for !p.eof() && isDigit(p.input[p.pos]) {
		p.pos++
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		p.pos = start
		return 0, false
	}
	return n, true
}

// actionArg recognizes the integer argument of a parameterized action:
// a positive integer, or the single digit 0 (legal syntax, meaning deferred
// to the evaluator).
func (p *parser) actionArg() (int, bool) {
	if n, ok := p.positiveInt(); ok {
		return n, true
	}
	if !p.eof() && p.input[p.pos] == '0' && (p.pos+1 >= len(p.input) || !isDigit(p.input[p.pos+1])) {
		p.pos++
		return 0, true
	}
	return 0, false
}

// identifier recognizes a dice-group label: three or more letters, then any
// run of alphanumerics or underscore. Case is preserved verbatim. After the
// mandatory three letters the scan stops as soon as the remaining input
// begins a dice specifier, so "heroD20" is the label "hero" before the dice
// "D20" rather than one long word.
func (p *parser) identifier() (string, bool) {
	start := p.pos
	for p.pos < len(p.input) && p.pos-start < 3 && isLetter(p.input[p.pos]) {
		p.pos++
	}
	if p.pos-start < 3 {
		p.pos = start
		return "", p.fail("dice identifier")
	}
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c != '_' && !isAlnum(c) {
			break
		}
		if diceSpecAhead(p.input, p.pos) {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos], true
}

// diceSpecAhead reports whether the input at offset i begins a dice
// specifier: an optional count then "D" with a sides digit, or "F" not
// followed by an alphanumeric (the same guard parseFudgeDice applies).
func diceSpecAhead(s string, i int) bool {
	j := i
	if j < len(s) && s[j] >= '1' && s[j] <= '9' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	if j >= len(s) {
		return false
	}
	switch lower(s[j]) {
	case 'd':
		return j+1 < len(s) && s[j+1] >= '1' && s[j+1] <= '9'
	case 'f':
		return j+1 >= len(s) || !isAlnum(s[j+1])
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isDigit(c) || isLetter(c)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
