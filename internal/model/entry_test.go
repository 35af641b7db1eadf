package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krfl/sidequest/internal/model"
)

func TestEntryWireFormat(t *testing.T) {
	e := model.New(time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC), "buy milk")

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"timestamp":1704465000,"message":"buy milk"}`, string(data))
}

func TestEntryUnmarshal(t *testing.T) {
	var e model.Entry
	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":1704465000,"message":"buy milk"}`), &e))

	assert.True(t, e.Timestamp.Equal(time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, e.Timestamp.Location())
	assert.Equal(t, "buy milk", e.Message)
}

func TestNewTruncatesSubSecond(t *testing.T) {
	e := model.New(time.Unix(100, 999_999_999), "note")

	assert.Equal(t, int64(100), e.Timestamp.Unix())
	assert.Zero(t, e.Timestamp.Nanosecond())
}

func TestNewFromArgsJoinsWords(t *testing.T) {
	e := model.NewFromArgs(time.Unix(100, 0), []string{"buy", "milk", "and", "eggs"})
	assert.Equal(t, "buy milk and eggs", e.Message)
}
