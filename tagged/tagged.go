package tagged

// Value pairs a payload with a compile-time-only tag marker.
//
// The Tag parameter is phantom: it stores no data and has no behavior, it
// only participates in type identity. The in-memory representation of a
// Value is exactly the representation of its Payload - constructing a Value
// and reading the payload back is a plain copy, never an allocation or a
// transformation.
//
// The payload field is deliberately unexported. Member access on struct
// payloads goes through Raw/SetRaw or through accessors generated by
// cmd/taggedgen; see that command's documentation.
type Value[Tag any, Payload any] struct {
	payload Payload
}

// New constructs a tagged value from the given payload.
//
// It never fails and never transforms the payload. The Tag type parameter
// must be named explicitly at the call site; Payload is inferred:
//
//	bookID := tagged.New[bookIDTag](uuid.New())
func New[Tag any, Payload any](payload Payload) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: payload}
}

// FromRaw constructs a tagged value from the given raw value.
//
// It is the named-parameter flavor of New and behaves identically; it exists
// so call sites can spell out that they are wrapping an untagged raw value.
func FromRaw[Tag any, Payload any](rawValue Payload) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: rawValue}
}

// Raw returns the wrapped payload.
func (v Value[Tag, Payload]) Raw() Payload {
	return v.payload
}

// SetRaw replaces the wrapped payload wholesale.
func (v *Value[Tag, Payload]) SetRaw(rawValue Payload) {
	v.payload = rawValue
}

// Coerce relabels a tagged value under a different tag marker, keeping the
// identical payload.
//
// This is the single escape hatch through the no-implicit-tag-crossing rule.
// It performs no validation: the caller asserts that treating a NewTag value
// as carrying this payload is semantically valid. The payload is copied
// field-for-field into the new type (Go has no checked reinterpretation for
// distinct named types); the copy is trivially elided by the compiler.
//
//	legacyID := tagged.Coerce[legacyBookIDTag](bookID)
func Coerce[NewTag any, Tag any, Payload any](v Value[Tag, Payload]) Value[NewTag, Payload] {
	return Value[NewTag, Payload]{payload: v.payload}
}

// Map returns a tagged value wrapping transform(payload), under the same tag
// marker. A panic raised by transform propagates untouched.
//
// This is a free function rather than a method because Go methods cannot
// introduce the Mapped type parameter.
func Map[Tag any, Payload any, Mapped any](v Value[Tag, Payload], transform func(Payload) Mapped) Value[Tag, Mapped] {
	return Value[Tag, Mapped]{payload: transform(v.payload)}
}
