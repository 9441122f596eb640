package transport

import (
	"bytes"
	"encoding/json"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
)

// JsonSerializer encodes entities with encoding/json; attribute names come from json tags
type JsonSerializer struct {
	options model.SerializerOptions
}

// NewSerializer is the default serializer factory
func NewSerializer(settings model.DatabaseSettings) model.Serializer {
	return NewJsonSerializer(settings.Serialization)
}

func NewJsonSerializer(options model.SerializerOptions) *JsonSerializer {
	return &JsonSerializer{options: options}
}

func (s *JsonSerializer) Marshal(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(s.options.EscapeHTML)
	if s.options.Indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (s *JsonSerializer) Unmarshal(data []byte, value interface{}) error {
	return json.Unmarshal(data, value)
}
