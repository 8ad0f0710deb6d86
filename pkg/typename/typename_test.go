package typename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct{}

func TestOf(t *testing.T) {
	assert.Equal(t, "int", Of[int]())
	assert.Equal(t, "[]string", Of[[]string]())
	assert.Equal(t, "map[string]int", Of[map[string]int]())
	assert.Equal(t, "typename.sample", Of[sample]())
	assert.Equal(t, "*typename.sample", Of[*sample]())
}

func TestFor(t *testing.T) {
	assert.Equal(t, "float64", For(1.5))
	assert.Equal(t, "typename.sample", For(sample{}))
	assert.Equal(t, "<nil>", For(nil))
}
