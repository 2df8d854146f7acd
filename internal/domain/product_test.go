package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryTradicional.Valid())
	assert.True(t, CategoryGourmet.Valid())
	assert.True(t, CategoryVegano.Valid())
	assert.True(t, CategoryEspecial.Valid())
	assert.False(t, Category("Salgado").Valid())
	assert.False(t, Category("").Valid())
}
