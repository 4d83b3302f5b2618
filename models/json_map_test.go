package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapAcceptsArbitraryValues(t *testing.T) {
	var m JSONMap
	err := json.Unmarshal([]byte(`{"qty": 2, "gift": true, "note": "urgent"}`), &m)
	require.NoError(t, err)
	assert.Equal(t, float64(2), m["qty"])
	assert.Equal(t, true, m["gift"])
	assert.Equal(t, "urgent", m["note"])
}

func TestJSONMapRoundTrip(t *testing.T) {
	in := JSONMap{"qty": float64(2), "sku": "A-17", "tags": []interface{}{"a", "b"}}

	v, err := in.Value()
	require.NoError(t, err)

	var out JSONMap
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestJSONMapNilHandling(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	out := JSONMap{"k": "v"}
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}
