package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	info, err := Lookup("Vigenere")
	require.NoError(t, err)
	assert.Equal(t, "vigenere", info.Name)

	_, err = Lookup("enigma")
	assert.ErrorIs(t, err, ErrUnknownCipher)
}

func TestCatalogue(t *testing.T) {
	list := Catalogue()
	require.Len(t, list, 4)
	names := make([]string, len(list))
	for i, info := range list {
		names[i] = info.Name
		assert.NotEmpty(t, info.Formula)
	}
	assert.Equal(t, []string{"atbash", "caesar", "columnar", "vigenere"}, names)
}
