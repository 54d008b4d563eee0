package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshalForms(t *testing.T) {
	cases := map[string]string{
		"number":   `7`,
		"string":   `"7"`,
		"expanded": `{"id": 7, "name": "Red House"}`,
		"nested":   `{"id": "7"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var r Ref
			require.NoError(t, json.Unmarshal([]byte(raw), &r))
			assert.True(t, r.Matches(7), "raw %s should match id 7", raw)
			assert.False(t, r.Matches(8))

			id, ok := r.ID()
			require.True(t, ok)
			assert.Equal(t, 7, id)
		})
	}
}

func TestRefUnmarshalUnset(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `{}`} {
		var r Ref
		require.NoError(t, json.Unmarshal([]byte(raw), &r), "raw %s", raw)
		assert.True(t, r.IsZero(), "raw %s", raw)
		assert.False(t, r.Matches(0), "raw %s", raw)
	}
}

func TestRefNonNumericNeverMatches(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &r))
	assert.False(t, r.IsZero())
	assert.False(t, r.Matches(0))

	_, ok := r.ID()
	assert.False(t, ok)
}

func TestRefMarshal(t *testing.T) {
	b, err := json.Marshal(RefTo(7))
	require.NoError(t, err)
	assert.Equal(t, `7`, string(b))

	b, err = json.Marshal(Ref{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestNullableRefID(t *testing.T) {
	id := NullableRefID(RefTo(3))
	require.NotNil(t, id)
	assert.Equal(t, 3, *id)

	assert.Nil(t, NullableRefID(Ref{}))
	assert.True(t, RefFromNullableID(nil).IsZero())
	assert.True(t, RefFromNullableID(id).Matches(3))
}
