package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "web1.example.com.", Absolute("web1.example.com"))
	assert.Equal(t, "web1.example.com.", Absolute("web1.example.com."))
	assert.Equal(t, "", Absolute(""))
	assert.Equal(t, "example.com", Relative("example.com."))
	assert.Equal(t, "web1.example.com", Join("web1", "example.com."))
	assert.Equal(t, "web1.example.com", Join("web1", "example.com"))
	assert.Equal(t, "web1", Join("web1", ""))
}
