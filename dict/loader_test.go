package dict

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadEnglishBundle(t *testing.T) {
	o, err := Load("../testdata/english.dict.yaml")
	assert.NoError(t, err)
	assert.True(t, o.ExactLookup("test"))
	assert.True(t, o.Find("1987"))
	assert.False(t, o.ExactLookup("1987"))
	assert.True(t, o.LeftWallDefined())
	assert.True(t, o.RightWallDefined())
}

func TestLoadHebrewBundle(t *testing.T) {
	o, err := Load("../testdata/hebrew.dict.yaml")
	assert.NoError(t, err)
	assert.True(t, o.ExactLookup("לכתי"))
}
