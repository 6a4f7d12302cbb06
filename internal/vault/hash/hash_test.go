package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_Deterministic(t *testing.T) {
	payload := []byte(`{"name":"Marauder MAD-3R","tonnage":75}`)

	h1, err := Content(payload)
	require.NoError(t, err)

	h2, err := Content(payload)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // BLAKE2b-256 hex
}

func TestContent_KeyOrderIndependent(t *testing.T) {
	a := []byte(`{"name":"Marauder MAD-3R","tonnage":75}`)
	b := []byte(`{"tonnage":75,"name":"Marauder MAD-3R"}`)

	ha, err := Content(a)
	require.NoError(t, err)

	hb, err := Content(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
}

func TestContent_WhitespaceIndependent(t *testing.T) {
	a := []byte(`{"name":"Atlas"}`)
	b := []byte("{\n  \"name\": \"Atlas\"\n}")

	ha, err := Content(a)
	require.NoError(t, err)

	hb, err := Content(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
}

func TestContent_DifferentPayloads(t *testing.T) {
	ha, err := Content([]byte(`{"tonnage":75}`))
	require.NoError(t, err)

	hb, err := Content([]byte(`{"tonnage":80}`))
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
}

func TestContent_NilPayload(t *testing.T) {
	h1, err := Content(nil)
	require.NoError(t, err)

	h2, err := Content([]byte{})
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.NotEmpty(t, h1)
}

func TestContent_InvalidJSON(t *testing.T) {
	_, err := Content([]byte(`{"broken`))
	assert.Error(t, err)
}
