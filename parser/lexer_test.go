package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moussetc/letsroll/ast"
)

func TestPositiveInt(t *testing.T) {
	p := newParser("142D")
	n, ok := p.positiveInt()
	require.True(t, ok)
	assert.Equal(t, 142, n)
	assert.Equal(t, 3, p.pos)

	t.Run("Leading Zero Rejected", func(t *testing.T) {
		p := newParser("042")
		_, ok := p.positiveInt()
		assert.False(t, ok)
		assert.Equal(t, 0, p.pos)
	})
}

func TestActionArg_ZeroIsLegal(t *testing.T) {
	p := newParser("0)")
	n, ok := p.actionArg()
	require.True(t, ok)
	assert.Equal(t, 0, n)

	p = newParser("01")
	_, ok = p.actionArg()
	assert.False(t, ok)
}

func TestKeyword_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"keepbest(", "KEEPBEST(", "KeepBest("} {
		p := newParser(input)
		assert.True(t, p.keyword("keepbest("), "input %q", input)
	}

	p := newParser("Keep Best(")
	assert.False(t, p.keyword("keepbest("))
	assert.Equal(t, 0, p.pos)
}

func TestIdentifier(t *testing.T) {
	t.Run("Minimum Three Letters", func(t *testing.T) {
		p := newParser("ab")
		_, ok := p.identifier()
		assert.False(t, ok)
		assert.Equal(t, 0, p.pos)
	})

	t.Run("Stops Before Dice", func(t *testing.T) {
		p := newParser("heroD20")
		ident, ok := p.identifier()
		require.True(t, ok)
		assert.Equal(t, "hero", ident)
	})

	t.Run("Stops Before Counted Dice", func(t *testing.T) {
		p := newParser("hero2D20")
		ident, ok := p.identifier()
		require.True(t, ok)
		assert.Equal(t, "hero", ident)
	})

	t.Run("Keeps Digits That Start No Dice", func(t *testing.T) {
		p := newParser("hero2 D20")
		ident, ok := p.identifier()
		require.True(t, ok)
		assert.Equal(t, "hero2", ident)
	})

	t.Run("Flip Is No Dice Boundary", func(t *testing.T) {
		// "f" followed by an alphanumeric is not a fudge specifier,
		// so the scan keeps going.
		p := newParser("elflord D6")
		ident, ok := p.identifier()
		require.True(t, ok)
		assert.Equal(t, "elflord", ident)
	})
}

func TestDiceSpecAhead(t *testing.T) {
	assert.True(t, diceSpecAhead("D6", 0))
	assert.True(t, diceSpecAhead("2d8)", 0))
	assert.True(t, diceSpecAhead("10F ", 0))
	assert.True(t, diceSpecAhead("f", 0))

	assert.False(t, diceSpecAhead("Flip", 0))
	assert.False(t, diceSpecAhead("D0", 0))
	assert.False(t, diceSpecAhead("0d6", 0))
	assert.False(t, diceSpecAhead("2", 0))
	assert.False(t, diceSpecAhead("abc", 0))
}

func TestParseFudgeDice_Guard(t *testing.T) {
	p := newParser("2F")
	spec, ok := p.parseFudgeDice()
	require.True(t, ok)
	assert.Equal(t, ast.FudgeDice{Count: 2}, spec)

	for _, input := range []string{"F8", "Flip", "2Fa"} {
		p := newParser(input)
		_, ok := p.parseFudgeDice()
		assert.False(t, ok, "input %q", input)
		assert.Equal(t, 0, p.pos, "input %q", input)
	}
}

// The action recognizer accepts homogeneous value lists of either kind and
// reports a mixed list as a hard failure at the offending value.
func TestParseAction_ValueLists(t *testing.T) {
	t.Run("Homogeneous Numeric", func(t *testing.T) {
		p := newParser("Reroll(1,2,3)")
		action, ok := p.parseAction()
		require.True(t, ok)
		assert.Equal(t, ast.Reroll{Values: []ast.RollValue{ast.Numeric(1), ast.Numeric(2), ast.Numeric(3)}}, action)
	})

	t.Run("Homogeneous Fudge", func(t *testing.T) {
		p := newParser("Reroll(+,-,0)")
		action, ok := p.parseAction()
		require.True(t, ok)
		assert.Equal(t, ast.Reroll{Values: []ast.RollValue{ast.Plus, ast.Minus, ast.Blank}}, action)
	})

	t.Run("Mixed", func(t *testing.T) {
		p := newParser("Reroll(1,+)")
		_, ok := p.parseAction()
		require.False(t, ok)
		require.NotNil(t, p.err)
		assert.Equal(t, MixedValueList, p.err.Kind)
	})

	t.Run("Empty", func(t *testing.T) {
		p := newParser("Explode()")
		_, ok := p.parseAction()
		require.False(t, ok)
		require.NotNil(t, p.err)
		assert.Equal(t, IncompleteRequest, p.err.Kind)
	})
}

// RerollBest must win over the shorter Reroll keyword it contains.
func TestParseAction_PriorityOrder(t *testing.T) {
	p := newParser("RerollBest(2)")
	action, ok := p.parseAction()
	require.True(t, ok)
	assert.Equal(t, ast.RerollBest{N: 2}, action)

	p = newParser("Reroll(2)")
	action, ok = p.parseAction()
	require.True(t, ok)
	assert.Equal(t, ast.Reroll{Values: []ast.RollValue{ast.Numeric(2)}}, action)
}
