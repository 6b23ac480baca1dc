package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/Bogota", Location("America/Bogota").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/City").String())

	assert.False(t, IsValid(""))
	assert.True(t, IsValid("UTC"))
}
