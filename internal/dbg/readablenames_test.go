package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "Ø", Name("face", -1))

	first := Name("face", 3)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name("face", 3), "names are memoized")
	assert.NotEqual(t, "Ø", Name("edge", 0))
}
