package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	for _, v := range []Variant{VariantPlain, VariantDraft, VariantLive} {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseVariant("LIVE")
	require.NoError(t, err)
	assert.Equal(t, VariantLive, got)

	_, err = ParseVariant("onchain")
	require.ErrorContains(t, err, `unknown proposal variant "onchain"`)

	assert.Equal(t, "Variant(9)", Variant(9).String())
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		req, err := NewRequest(VariantPlain, "42", "")
		require.NoError(t, err)
		assert.Contains(t, req.Query, "executableCalls")
		assert.NotContains(t, req.Query, "metadata")
		assert.Equal(t, map[string]any{"input": map[string]any{"id": "42", "isLatest": true}}, req.Variables)
	})

	t.Run("draft", func(t *testing.T) {
		t.Parallel()

		req, err := NewRequest(VariantDraft, "42", "ignored")
		require.NoError(t, err)
		assert.Contains(t, req.Query, "creator")
		assert.Contains(t, req.Query, "description")
		assert.Equal(t, map[string]any{"input": map[string]any{"id": "42", "isLatest": true}}, req.Variables)
	})

	t.Run("live", func(t *testing.T) {
		t.Parallel()

		gov := "eip155:1:0x323A76393544d5ecca80cd6ef2A560C6a395b7E3"
		req, err := NewRequest(VariantLive, "42", gov)
		require.NoError(t, err)
		assert.Contains(t, req.Query, "onchainId")
		assert.Contains(t, req.Query, "... on Block")
		assert.Equal(t, map[string]any{"input": map[string]any{"governorId": gov, "onchainId": "42"}}, req.Variables)
	})

	t.Run("live without governor", func(t *testing.T) {
		t.Parallel()

		_, err := NewRequest(VariantLive, "42", "")
		require.ErrorContains(t, err, "governor id is required")
	})

	t.Run("unknown variant", func(t *testing.T) {
		t.Parallel()

		_, err := NewRequest(Variant(7), "42", "")
		require.ErrorContains(t, err, "unsupported proposal variant")
	})
}

func TestVariant_Capabilities(t *testing.T) {
	t.Parallel()

	assert.False(t, VariantPlain.HasDescription())
	assert.True(t, VariantDraft.HasDescription())
	assert.True(t, VariantLive.HasDescription())

	assert.False(t, VariantPlain.RequiresGovernor())
	assert.False(t, VariantDraft.RequiresGovernor())
	assert.True(t, VariantLive.RequiresGovernor())
}
