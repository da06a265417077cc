package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")

	assert.Equal("label start missing", From("label %v missing", "start"))
	assert.Equal("0x1f", From("%#x", 0x1f))
	assert.Equal("plain", From("plain"))
}

func TestUse(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")
	expected := From("%v passes", 1234)

	Use()
	assert.Equal(expected, From("%v passes", 1234))
	assert.Equal("plain", From("plain"))
}
