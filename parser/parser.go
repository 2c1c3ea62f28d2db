// Package parser recognizes the compact dice-notation language and turns a
// request string into an ast.RollRequest.
//
// The notation is described by examples: "2D6Sum" rolls two six-sided dice
// and sums each, "(heroD20KeepBest(2))x3Total" rolls a labelled d20 group,
// keeps the two best results, multiplies the combined result by three and
// totals it. Keywords ("D", "F", action names, "Count") are matched
// case-insensitively; identifiers keep their case; the only skippable
// whitespace is the plain space character.
//
// Recognition is a single top-down pass with ordered alternatives: the first
// alternative that matches wins, the cursor is restored when an alternative
// fails, and once an atomic token has been committed there is no
// backtracking out of it. The parser never executes a request; it only
// builds the AST for an evaluator to consume. Parsing is reentrant: each
// call owns its own state, so independent strings may be parsed
// concurrently.
package parser

import "github.com/moussetc/letsroll/ast"

// Parse converts one roll-request string into its AST. On failure it
// returns a *ParseError describing the first offending position; no partial
// result is ever returned.
func Parse(input string) (*ast.RollRequest, error) {
	p := newParser(input)
	req, ok := p.parseRequest()
	if !ok {
		return nil, p.parseError()
	}
	return req, nil
}

// parseRequest recognizes the whole input: one or more units, then any
// top-level actions, then an optional aggregation, then end of input.
func (p *parser) parseRequest() (*ast.RollRequest, bool) {
	req := &ast.RollRequest{}

	p.skipSpaces()
	unit, ok := p.parseUnit()
	if !ok {
		return nil, false
	}
	req.Dice = append(req.Dice, unit)
	for {
		save := p.pos
		p.skipSpaces()
		unit, ok := p.parseUnit()
		if !ok {
			if p.err != nil {
				return nil, false
			}
			p.pos = save
			break
		}
		req.Dice = append(req.Dice, unit)
	}

	for {
		save := p.pos
		p.skipSpaces()
		action, ok := p.parseAction()
		if !ok {
			if p.err != nil {
				return nil, false
			}
			p.pos = save
			break
		}
		req.Actions = append(req.Actions, action)
	}

	save := p.pos
	p.skipSpaces()
	if p.keyword("count") {
		req.Aggregation = ast.Count
	} else {
		p.pos = save
	}

	p.skipSpaces()
	if !p.eof() {
		p.abort(TrailingInput, p.pos)
		return nil, false
	}
	return req, true
}

// parseUnit recognizes one request unit: an explicit "(...)" group, or a
// bare dice specifier with no label and no actions.
func (p *parser) parseUnit() (ast.ActionedDice, bool) {
	if !p.eof() && p.input[p.pos] == '(' {
		return p.parseGroup()
	}
	spec, ok := p.parseDiceSpec()
	if !ok {
		return ast.ActionedDice{}, false
	}
	return ast.ActionedDice{Spec: spec}, true
}

// parseGroup recognizes "(" identifier? dice action* ")". The open paren
// commits the group: anything malformed inside is a hard failure rather
// than a fallthrough to another alternative.
func (p *parser) parseGroup() (ast.ActionedDice, bool) {
	group := ast.ActionedDice{}
	p.pos++
	p.skipSpaces()
	if ident, ok := p.identifier(); ok {
		group.Identifier = ident
		p.skipSpaces()
	}
	spec, ok := p.parseDiceSpec()
	if !ok {
		p.err = p.parseError()
		return group, false
	}
	group.Spec = spec
	for {
		save := p.pos
		p.skipSpaces()
		action, ok := p.parseAction()
		if !ok {
			if p.err != nil {
				return group, false
			}
			p.pos = save
			break
		}
		group.Actions = append(group.Actions, action)
	}
	p.skipSpaces()
	if p.eof() || p.input[p.pos] != ')' {
		p.abortHere(`action`, `")"`)
		return group, false
	}
	p.pos++
	return group, true
}

// parseDiceSpec recognizes one dice specifier as a single atomic token (no
// internal spaces), trying numbered, then fudge, then constant dice.
func (p *parser) parseDiceSpec() (ast.DiceSpec, bool) {
	start := p.pos
	if spec, ok := p.parseNumberedDice(); ok {
		return spec, true
	}
	if spec, ok := p.parseFudgeDice(); ok {
		return spec, true
	}
	if spec, ok := p.parseConstantDice(); ok {
		return spec, true
	}
	p.pos = start
	return nil, p.fail("dice specifier")
}

func (p *parser) parseNumberedDice() (ast.DiceSpec, bool) {
	start := p.pos
	count := 1
	if n, ok := p.positiveInt(); ok {
		count = n
	}
	if !p.keyword("d") {
		p.pos = start
		return nil, false
	}
	sides, ok := p.positiveInt()
	if !ok {
		p.fail("dice sides")
		p.pos = start
		return nil, false
	}
	return ast.NumberedDice{Count: count, Sides: sides}, true
}

func (p *parser) parseFudgeDice() (ast.DiceSpec, bool) {
	start := p.pos
	count := 1
	if n, ok := p.positiveInt(); ok {
		count = n
	}
	if !p.keyword("f") {
		p.pos = start
		return nil, false
	}
	// "F" is a prefix of "Flip". Reject the fudge reading when another
	// alphanumeric follows so the keyword can be recognized instead.
	if !p.eof() && isAlnum(p.input[p.pos]) {
		p.pos = start
		return nil, false
	}
	return ast.FudgeDice{Count: count}, true
}

func (p *parser) parseConstantDice() (ast.DiceSpec, bool) {
	start := p.pos
	if p.eof() || p.input[p.pos] != '+' {
		return nil, false
	}
	p.pos++
	value, ok := p.positiveInt()
	if !ok {
		p.fail("constant value")
		p.pos = start
		return nil, false
	}
	return ast.ConstantDice{Value: value}, true
}

// parseAction recognizes exactly one action. Alternatives are tried in a
// fixed order; RerollBest and RerollWorst come before Reroll so the longer
// keywords win. Parameterized actions are atomic: their keyword commits,
// and their argument is consumed with no intervening whitespace (except
// around commas in a value list).
func (p *parser) parseAction() (ast.Action, bool) {
	switch {
	case p.keyword("sum"):
		return ast.Sum{}, true
	case p.keyword("flip"):
		return ast.Flip{}, true
	case p.keyword("total"):
		return ast.Total{}, true
	case p.keyword("concat"):
		return ast.Concat{}, true
	case p.keyword("x"):
		n, ok := p.actionArg()
		if !ok {
			p.abortHere("multiplier")
			return nil, false
		}
		return ast.Mult{Factor: n}, true
	case p.keyword("explode("):
		values, ok := p.parseValueList()
		if !ok {
			return nil, false
		}
		return ast.Explode{Values: values}, true
	case p.keyword("rerollbest("):
		return p.parseActionArg(func(n int) ast.Action { return ast.RerollBest{N: n} })
	case p.keyword("rerollworst("):
		return p.parseActionArg(func(n int) ast.Action { return ast.RerollWorst{N: n} })
	case p.keyword("reroll("):
		values, ok := p.parseValueList()
		if !ok {
			return nil, false
		}
		return ast.Reroll{Values: values}, true
	case p.keyword("keepbest("):
		return p.parseActionArg(func(n int) ast.Action { return ast.KeepBest{N: n} })
	case p.keyword("keepworst("):
		return p.parseActionArg(func(n int) ast.Action { return ast.KeepWorst{N: n} })
	}
	return nil, p.fail("action")
}

// parseActionArg finishes a committed single-integer action: the argument
// and the closing paren, both immediate.
func (p *parser) parseActionArg(build func(int) ast.Action) (ast.Action, bool) {
	n, ok := p.actionArg()
	if !ok {
		p.abortHere("integer")
		return nil, false
	}
	if p.eof() || p.input[p.pos] != ')' {
		p.abortHere(`")"`)
		return nil, false
	}
	p.pos++
	return build(n), true
}

// parseValueList finishes a committed Reroll/Explode argument: a non-empty
// comma-separated list of roll values, all numeric or all fudge symbols,
// closed by ")". Spaces are tolerated around the commas only. An empty list
// and a mixed list are hard failures.
func (p *parser) parseValueList() ([]ast.RollValue, bool) {
	first, ok := p.parseRollValue()
	if !ok {
		if p.eof() || p.input[p.pos] == ')' {
			p.abort(IncompleteRequest, p.pos, "roll value")
		} else {
			p.abort(UnexpectedToken, p.pos, "roll value")
		}
		return nil, false
	}
	_, numeric := first.(ast.Numeric)
	values := []ast.RollValue{first}
	for {
		if !p.eof() && p.input[p.pos] == ')' {
			p.pos++
			return values, true
		}
		save := p.pos
		p.skipSpaces()
		if p.eof() || p.input[p.pos] != ',' {
			if p.pos == save {
				p.abortHere(`","`, `")"`)
			} else {
				// a space is only legal next to a comma
				p.abortHere(`","`)
			}
			return nil, false
		}
		p.pos++
		p.skipSpaces()
		at := p.pos
		value, ok := p.parseRollValue()
		if !ok {
			p.abortHere("roll value")
			return nil, false
		}
		if _, ok := value.(ast.Numeric); ok != numeric {
			p.abort(MixedValueList, at)
			return nil, false
		}
		values = append(values, value)
	}
}

// parseRollValue recognizes one value of a Reroll/Explode list: a positive
// integer, or one of the fudge symbols "+", "-", "0".
func (p *parser) parseRollValue() (ast.RollValue, bool) {
	if n, ok := p.positiveInt(); ok {
		return ast.Numeric(n), true
	}
	if !p.eof() {
		switch p.input[p.pos] {
		case '+', '-', '0':
			v := ast.FudgeSymbol(p.input[p.pos])
			p.pos++
			return v, true
		}
	}
	return nil, false
}

// parseError builds the error for a failed parse: the fatal error if a
// committed token aborted, otherwise the furthest recorded failure, with
// failures at end of input classified as IncompleteRequest.
func (p *parser) parseError() *ParseError {
	if p.err != nil {
		return p.err
	}
	kind := UnexpectedToken
	if p.failPos >= len(p.input) {
		kind = IncompleteRequest
	}
	pos := p.failPos
	if pos < 0 {
		pos = 0
	}
	return &ParseError{Kind: kind, Pos: pos, Expected: p.expected}
}
