package grpclib

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
)

// JSONCodecName is the content subtype, clients select it with grpc.CallContentSubtype
const JSONCodecName = "json"

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec marshals gRPC messages as JSON
type JSONCodec struct {
}

// Marshal ...
func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal ...
func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name ...
func (JSONCodec) Name() string {
	return JSONCodecName
}

// RecoveryHandlerFunc converts a panic into codes.Internal
func RecoveryHandlerFunc(p interface{}) error {
	return status.Errorf(codes.Internal, "panic: %s", fmt.Sprint(p))
}
