package tagged

import (
	"encoding"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// ErrTextFormUnsupported is returned by UnmarshalText when the payload type
// has no textual reconstruction rule of its own.
var ErrTextFormUnsupported = errors.New("payload type does not support reconstruction from text")

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the payload alone: the tag marker is erased on the
// wire, so the encoded form of a tagged value is byte-identical to the
// encoded form of its bare payload.
func (v Value[Tag, Payload]) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(v.payload)
}

// UnmarshalJSON decodes a payload value using the payload's own decode rule
// and wraps it. A decode failure surfaces the payload codec's error
// unchanged - no wrapper-specific annotation is added.
func (v *Value[Tag, Payload]) UnmarshalJSON(data []byte) error {
	return jsonCodec.Unmarshal(data, &v.payload)
}

// MarshalYAML encodes the payload alone, with the same tag-erasure contract
// as MarshalJSON.
func (v Value[Tag, Payload]) MarshalYAML() (any, error) {
	return v.payload, nil
}

// UnmarshalYAML decodes a payload value from the node and wraps it; decode
// failures surface the payload codec's error unchanged.
func (v *Value[Tag, Payload]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.payload)
}

// MarshalText forwards to the payload's encoding.TextMarshaler when it has
// one and falls back to the payload's plain string form otherwise. This is
// what lets tagged values serve as JSON object keys the same way their
// payloads would.
func (v Value[Tag, Payload]) MarshalText() ([]byte, error) {
	if marshaler, ok := any(v.payload).(encoding.TextMarshaler); ok {
		return marshaler.MarshalText()
	}

	return []byte(fmt.Sprint(v.payload)), nil
}

// UnmarshalText forwards to the payload's encoding.TextUnmarshaler when it
// has one; string payloads take the text verbatim. Payload types with no
// textual reconstruction rule yield ErrTextFormUnsupported.
func (v *Value[Tag, Payload]) UnmarshalText(text []byte) error {
	if unmarshaler, ok := any(&v.payload).(encoding.TextUnmarshaler); ok {
		return unmarshaler.UnmarshalText(text)
	}

	if target, ok := any(&v.payload).(*string); ok {
		*target = string(text)
		return nil
	}

	return ErrTextFormUnsupported
}
