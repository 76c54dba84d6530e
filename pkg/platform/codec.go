// Package platform provides the channel transport between Go and the native
// text input control. Go code invokes imperative methods on the native view
// (set text, request focus, restyle) and receives editing events back
// (text changes, focus transitions, edit-menu queries) over the same channel.
package platform

import "encoding/json"

// MessageCodec turns channel payloads into bytes and back.
type MessageCodec interface {
	// Encode renders value as bytes for the native side.
	Encode(value any) ([]byte, error)

	// Decode parses bytes from the native side into a Go value.
	Decode(data []byte) (any, error)
}

// JsonCodec is the JSON MessageCodec. Numbers decode as float64 and objects
// as map[string]any, which is what the argument converters expect.
type JsonCodec struct{}

func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode parses data, treating an empty payload as nil.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// DefaultCodec is the codec platform channels start with.
var DefaultCodec MessageCodec = JsonCodec{}
