package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalBare(t *testing.T) {
	ref := BarberReference(7)

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))
}

func TestRef_MarshalExpanded(t *testing.T) {
	ref := ExpandedBarber(&Barber{ID: 7, Name: "Carlos", Available: true})

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Carlos","available":true}`, string(data))
}

func TestRef_UnmarshalBareID(t *testing.T) {
	var ref ServiceRef
	require.NoError(t, json.Unmarshal([]byte("42"), &ref))

	assert.Equal(t, int64(42), ref.ID())
	assert.False(t, ref.IsExpanded())
}

func TestRef_UnmarshalRecord(t *testing.T) {
	var ref ServiceRef
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Corte","price":45.0,"durationMinutes":30}`), &ref))

	assert.Equal(t, int64(3), ref.ID())
	record, ok := ref.Record()
	require.True(t, ok)
	assert.Equal(t, "Corte", record.Name)
	assert.Equal(t, 45.0, record.Price)
}

func TestRef_UnmarshalGarbage(t *testing.T) {
	var ref ClientRef
	assert.Error(t, json.Unmarshal([]byte(`"not a ref"`), &ref))
}
