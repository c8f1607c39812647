package spell

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNullOracle(t *testing.T) {
	var o Oracle = NullOracle{}
	assert.True(t, o.Test("anything"))
	assert.Equal(t, []string(nil), o.Suggest("anything"))
}

func TestStaticOracle(t *testing.T) {
	o := StaticOracle{
		Correct:     map[string]bool{"surprise": true},
		Suggestions: map[string][]string{"surprize": {"surprise"}, "youve": {"you ve"}},
	}
	assert.True(t, o.Test("surprise"))
	assert.False(t, o.Test("surprize"))
	assert.Equal(t, []string{"surprise"}, o.Suggest("surprize"))
	assert.Equal(t, []string{"you ve"}, o.Suggest("youve"))
}
