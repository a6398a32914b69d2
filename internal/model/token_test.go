package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTokens_Order(t *testing.T) {
	tokens := AllTokens()

	require.Len(t, tokens, 7)
	assert.Equal(t, TokenProject, tokens[0])
	assert.Equal(t, TokenBundleID, tokens[len(tokens)-1])
}

func TestSubstitutions_Value(t *testing.T) {
	set := Substitutions{
		{Token: TokenProject, Value: "Foo"},
		{Token: TokenAuthor, Value: ""},
	}

	value, ok := set.Value(TokenProject)
	require.True(t, ok)
	assert.Equal(t, "Foo", value)

	value, ok = set.Value(TokenAuthor)
	require.True(t, ok)
	assert.Empty(t, value)

	_, ok = set.Value(TokenYear)
	assert.False(t, ok)
}
