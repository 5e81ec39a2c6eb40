package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte(`["low sodium","no nuts"]`)))
	assert.Equal(t, StringList{"low sodium", "no nuts"}, list)

	// NULL column leaves the list empty
	var empty StringList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}

func TestStringListValueNil(t *testing.T) {
	// A nil list persists as an empty JSON array, not SQL NULL
	var list StringList
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestJSONScanRoundTrip(t *testing.T) {
	var m JSON
	require.NoError(t, m.Scan([]byte(`{"entity_id":"abc","action":"update"}`)))
	assert.Equal(t, "abc", m["entity_id"])
	assert.Equal(t, "update", m["action"])
}
