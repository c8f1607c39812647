package affix

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestConstraintChainInitialOnly(t *testing.T) {
	c, err := NewConstraint(ChainInitialOnly)
	assert.NoError(t, err)

	ok, err := c.Allows(ChainState{ChainIndex: 0})
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Allows(ChainState{ChainIndex: 1})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestConstraintRejectsDuplicateResidual(t *testing.T) {
	c, err := NewConstraint(`residual != "ו"`)
	assert.NoError(t, err)

	ok, err := c.Allows(ChainState{Residual: "ו"})
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Allows(ChainState{Residual: "הלכתי"})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestConstraintSeesAlreadySeenSubwords(t *testing.T) {
	c, err := NewConstraint(`!(" ו" in seen) && !("ו" in seen)`)
	assert.NoError(t, err)

	ok, err := c.Allows(ChainState{Seen: []string{"כש"}})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestNilConstraintAlwaysAllows(t *testing.T) {
	var c *Constraint
	ok, err := c.Allows(ChainState{})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestConstraintMustBeBoolean(t *testing.T) {
	_, err := NewConstraint(`chain_index + 1`)
	assert.Error(t, err)
}

func TestConstraintCompileError(t *testing.T) {
	_, err := NewConstraint(`chain_index ===`)
	assert.Error(t, err)
}
