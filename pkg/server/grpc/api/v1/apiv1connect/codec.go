package apiv1connect

import "github.com/goccy/go-json"

const codecName = "json"

// Codec marshals the plain Go messages of this package as JSON. It takes
// the place of connect's protobuf JSON codec.
type Codec struct{}

func (Codec) Name() string {
	return codecName
}

func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}
