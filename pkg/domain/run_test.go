package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOutcome_JSON(t *testing.T) {
	t.Run("done", func(t *testing.T) {
		data, err := json.Marshal(Done(8))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"done","count":8}`, string(data))
	})

	t.Run("error", func(t *testing.T) {
		data, err := json.Marshal(Failed(errors.New("store unreachable")))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"error","error":"store unreachable"}`, string(data))
	})

	t.Run("done with zero count", func(t *testing.T) {
		data, err := json.Marshal(Done(0))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"done","count":0}`, string(data))

		var back RunOutcome
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, Done(0), back)
	})

	t.Run("nil error", func(t *testing.T) {
		o := Failed(nil)
		assert.False(t, o.OK())
		assert.Equal(t, "unknown error", o.Error)
	})
}

func TestRunOutcome_String(t *testing.T) {
	assert.Equal(t, "done, 3 articles", Done(3).String())
	assert.Equal(t, "error, boom", Failed(errors.New("boom")).String())
}

func TestSource_Identifier(t *testing.T) {
	assert.Equal(t, "BBC", Source{Name: "BBC", URL: "https://bbc.co.uk/rss"}.Identifier())
	assert.Equal(t, "https://bbc.co.uk/rss", Source{URL: "https://bbc.co.uk/rss"}.Identifier())
}

func TestUpsertResult_Total(t *testing.T) {
	assert.Equal(t, 5, UpsertResult{Inserted: 2, Modified: 3}.Total())
}
