// Package mirrorpb defines the wire contract between the client and the
// mirror server: request/response messages, the gRPC service descriptor, a
// client stub and the server interface.
//
// Messages are carried by a JSON codec registered under CodecName. Values
// implementing proto.Message (health checks, emptypb.Empty) are encoded with
// protojson; everything else with encoding/json.
package mirrorpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype used by the mirror service.
const CodecName = "json"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (codec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(codec{})
}
