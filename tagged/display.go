package tagged

import (
	"encoding"
	"fmt"
	"strconv"
	"unsafe"
)

// String returns the payload's human-readable form verbatim. Payloads that
// implement fmt.Stringer are rendered through their own String method.
func (v Value[Tag, Payload]) String() string {
	return fmt.Sprint(v.payload)
}

// GoString returns the payload's debug form verbatim (the %#v rendering).
func (v Value[Tag, Payload]) GoString() string {
	return fmt.Sprintf("%#v", v.payload)
}

// ParseText reconstructs a tagged value from the payload's own textual form,
// for payloads implementing encoding.TextUnmarshaler.
//
// It succeeds if and only if the payload's own text reconstruction succeeds;
// failure is reported as absence, never as an error or panic:
//
//	bookID, ok := tagged.ParseText[bookIDTag, uuid.UUID]("a7b4c2...")
func ParseText[Tag any, Payload any, PayloadPtr interface {
	*Payload
	encoding.TextUnmarshaler
}](text string) (Value[Tag, Payload], bool) {
	var payload Payload
	if err := PayloadPtr(&payload).UnmarshalText([]byte(text)); err != nil {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: payload}, true
}

// ParseInt reconstructs a tagged integer from its base-10 string form,
// honoring the payload's width and signedness. Failure (including values out
// of the payload's range) is reported as absence.
func ParseInt[Tag any, Payload Integer](text string) (Value[Tag, Payload], bool) {
	bitSize := int(unsafe.Sizeof(Payload(0)) * 8)

	if isSignedPayload[Payload]() {
		parsed, err := strconv.ParseInt(text, 10, bitSize)
		if err != nil {
			return Value[Tag, Payload]{}, false
		}

		return Value[Tag, Payload]{payload: Payload(parsed)}, true
	}

	parsed, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: Payload(parsed)}, true
}

// ParseFloat reconstructs a tagged float from its string form, honoring the
// payload's width. Failure is reported as absence.
func ParseFloat[Tag any, Payload Float](text string) (Value[Tag, Payload], bool) {
	bitSize := int(unsafe.Sizeof(Payload(0)) * 8)

	parsed, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: Payload(parsed)}, true
}

// isSignedPayload reports whether the integer payload type is signed.
// Unsigned zero minus one wraps to the maximum value, which is not below
// zero; signed it is minus one.
func isSignedPayload[Payload Number]() bool {
	return Payload(0)-1 < Payload(0)
}
