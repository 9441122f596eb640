package transport

import (
	"testing"
	"time"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Key     string    `json:"_key"`
	Name    string    `json:"name"`
	Comment *string   `json:"comment"`
	Count   int       `json:"count"`
	Created time.Time `json:"created"`
}

func TestJsonSerializer_IncludesNullsAndDefaults(t *testing.T) {
	serializer := NewJsonSerializer(model.SerializerOptions{})
	data, err := serializer.Marshal(document{Key: "1", Name: "<b>", Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `{"_key":"1","name":"<b>","comment":null,"count":0,"created":"2024-01-02T03:04:05Z"}`, string(data))
}

func TestJsonSerializer_EscapeHtmlAndIndent(t *testing.T) {
	serializer := NewJsonSerializer(model.SerializerOptions{EscapeHTML: true, Indent: true})
	data, err := serializer.Marshal(map[string]string{"name": "<b>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"\\u003cb\\u003e\"\n}", string(data))
}

func TestJsonSerializer_Unmarshal(t *testing.T) {
	serializer := NewSerializer(model.DatabaseSettings{})
	var doc document
	require.NoError(t, serializer.Unmarshal([]byte(`{"_key":"1","name":"Alice","count":3}`), &doc))
	assert.Equal(t, "1", doc.Key)
	assert.Equal(t, 3, doc.Count)
	assert.Error(t, serializer.Unmarshal([]byte(`[1,2]`), &doc))
}
