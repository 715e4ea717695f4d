package cities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	assert.NotEmpty(t, List())
	assert.Contains(t, List(), "Toronto")
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("Montreal"))
	assert.False(t, Supported("Atlantis"))
	assert.False(t, Supported("toronto"))
}
