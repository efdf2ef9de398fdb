package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype layout service calls are sent with
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec carries layout messages as JSON over gRPC
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
