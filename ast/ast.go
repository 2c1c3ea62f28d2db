// Package ast defines the data model for parsed roll requests.
//
// A roll request describes which dice to roll, the transformations (actions)
// to apply to the results, and an optional final aggregation. The types here
// are pure values: they carry the parsed intent and nothing else. Rolling the
// dice and applying the actions is the evaluator's job, not this package's.
//
// Every node implements fmt.Stringer and prints a canonical notation that
// parses back to a structurally equal value.
package ast

import (
	"strconv"
	"strings"
)

// RollRequest is the root of a parsed request: one or more dice units,
// zero or more actions applied to the combined result, and an optional
// aggregation. A RollRequest is immutable once built.
type RollRequest struct {
	Dice        []ActionedDice
	Actions     []Action
	Aggregation Aggregation
}

// ActionedDice is one request unit: a dice specifier, an optional identifier
// naming the group, and the actions applied to that group's own results
// before it is combined with its siblings. A bare specifier has an empty
// identifier and no actions; an explicit "(...)" group may have both.
type ActionedDice struct {
	Identifier string
	Spec       DiceSpec
	Actions    []Action
}

// DiceSpec describes one group of identical dice.
type DiceSpec interface {
	String() string
	diceSpec()
}

// NumberedDice is Count dice with faces 1..Sides, e.g. "2D6".
type NumberedDice struct {
	Count int
	Sides int
}

// FudgeDice is Count dice with faces "+", "-" and "0", e.g. "4F".
type FudgeDice struct {
	Count int
}

// ConstantDice always rolls Value, e.g. "+5". It carries no count.
type ConstantDice struct {
	Value int
}

func (NumberedDice) diceSpec() {}
func (FudgeDice) diceSpec()    {}
func (ConstantDice) diceSpec() {}

func (d NumberedDice) String() string {
	return strconv.Itoa(d.Count) + "D" + strconv.Itoa(d.Sides)
}

func (d FudgeDice) String() string {
	return strconv.Itoa(d.Count) + "F"
}

func (d ConstantDice) String() string {
	return "+" + strconv.Itoa(d.Value)
}

// Action is a named transformation of roll results. Actions on a group apply
// to that group alone; actions on the request apply to the combined result.
// Order matters and is preserved exactly as written.
type Action interface {
	String() string
	action()
}

// Sum adds up the rolls of each die.
type Sum struct{}

// Flip reverses the digits of each roll.
type Flip struct{}

// Total adds every roll into a single value.
type Total struct{}

// Concat joins the rolls into one value.
type Concat struct{}

// Mult multiplies each roll by Factor, e.g. "x3".
type Mult struct {
	Factor int
}

// KeepBest keeps the N best rolls, e.g. "KeepBest(2)".
type KeepBest struct {
	N int
}

// KeepWorst keeps the N worst rolls.
type KeepWorst struct {
	N int
}

// RerollBest rerolls the N best rolls.
type RerollBest struct {
	N int
}

// RerollWorst rerolls the N worst rolls.
type RerollWorst struct {
	N int
}

// Reroll rerolls every die whose result is in Values, e.g. "Reroll(1,2)".
// Values is non-empty and homogeneous: all Numeric or all FudgeSymbol.
type Reroll struct {
	Values []RollValue
}

// Explode rolls an extra die for every result in Values, e.g. "Explode(6)".
// Values is non-empty and homogeneous, like Reroll's.
type Explode struct {
	Values []RollValue
}

func (Sum) action()         {}
func (Flip) action()        {}
func (Total) action()       {}
func (Concat) action()      {}
func (Mult) action()        {}
func (KeepBest) action()    {}
func (KeepWorst) action()   {}
func (RerollBest) action()  {}
func (RerollWorst) action() {}
func (Reroll) action()      {}
func (Explode) action()     {}

func (Sum) String() string    { return "Sum" }
func (Flip) String() string   { return "Flip" }
func (Total) String() string  { return "Total" }
func (Concat) String() string { return "Concat" }

func (a Mult) String() string        { return "x" + strconv.Itoa(a.Factor) }
func (a KeepBest) String() string    { return "KeepBest(" + strconv.Itoa(a.N) + ")" }
func (a KeepWorst) String() string   { return "KeepWorst(" + strconv.Itoa(a.N) + ")" }
func (a RerollBest) String() string  { return "RerollBest(" + strconv.Itoa(a.N) + ")" }
func (a RerollWorst) String() string { return "RerollWorst(" + strconv.Itoa(a.N) + ")" }

func (a Reroll) String() string  { return "Reroll(" + valueList(a.Values) + ")" }
func (a Explode) String() string { return "Explode(" + valueList(a.Values) + ")" }

func valueList(values []RollValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

// RollValue is a single roll result referenced by a Reroll or Explode list:
// either a numeric face or a fudge symbol.
type RollValue interface {
	String() string
	rollValue()
}

// Numeric is a numeric roll value, strictly positive.
type Numeric int

// FudgeSymbol is one face of a fudge die.
type FudgeSymbol byte

// The three fudge faces.
const (
	Plus  FudgeSymbol = '+'
	Minus FudgeSymbol = '-'
	Blank FudgeSymbol = '0'
)

func (Numeric) rollValue()     {}
func (FudgeSymbol) rollValue() {}

func (v Numeric) String() string     { return strconv.Itoa(int(v)) }
func (v FudgeSymbol) String() string { return string(v) }

// Aggregation is a final summarizing operation applied once to the whole
// request.
type Aggregation int

const (
	// NoAggregation leaves the combined result as is.
	NoAggregation Aggregation = iota
	// Count reduces the result to the number of values rolled.
	Count
)

func (a Aggregation) String() string {
	if a == Count {
		return "Count"
	}
	return ""
}

func (d ActionedDice) String() string {
	if d.Identifier == "" && len(d.Actions) == 0 {
		return d.Spec.String()
	}
	var b strings.Builder
	b.WriteByte('(')
	if d.Identifier != "" {
		b.WriteString(d.Identifier)
		b.WriteByte(' ')
	}
	b.WriteString(d.Spec.String())
	for _, a := range d.Actions {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// String renders the request in canonical notation. Tokens are separated by
// single spaces so that re-parsing the result yields a structurally equal
// request (a fudge specifier followed directly by an action keyword would
// otherwise be rejected by the parser's lookahead).
func (r RollRequest) String() string {
	parts := make([]string, 0, len(r.Dice)+len(r.Actions)+1)
	for _, d := range r.Dice {
		parts = append(parts, d.String())
	}
	for _, a := range r.Actions {
		parts = append(parts, a.String())
	}
	if r.Aggregation == Count {
		parts = append(parts, r.Aggregation.String())
	}
	return strings.Join(parts, " ")
}
