package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitAllows(t *testing.T) {
	assert.True(t, BoundedLimit(3).Allows(2))
	assert.False(t, BoundedLimit(3).Allows(3))
	assert.False(t, BoundedLimit(0).Allows(0))
	assert.True(t, UnlimitedLimit().Allows(1<<40))
}

func TestLimitFromCap(t *testing.T) {
	n := int64(5)
	assert.Equal(t, BoundedLimit(5), LimitFromCap(&n))
	assert.Equal(t, UnlimitedLimit(), LimitFromCap(nil))
}

func TestLimitJSONRoundTrip(t *testing.T) {
	encoded, err := json.Marshal(UnlimitedLimit())
	require.NoError(t, err)
	assert.Equal(t, "null", string(encoded))

	encoded, err = json.Marshal(BoundedLimit(3))
	require.NoError(t, err)
	assert.Equal(t, "3", string(encoded))

	var l Limit
	require.NoError(t, json.Unmarshal([]byte("null"), &l))
	assert.True(t, l.Unlimited)
	require.NoError(t, json.Unmarshal([]byte("7"), &l))
	assert.EqualValues(t, 7, l.N)
}
