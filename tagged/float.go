package tagged

import (
	"math"
	"unsafe"
)

// Floating-point-only proxy operations. Everything delegates verbatim to the
// payload's floating-point semantics: NaN and infinity results propagate
// with no special-casing.

// Div returns the tagged quotient of the payloads. Division by zero yields
// the payload's own result (infinity or NaN), never a panic.
func Div[Tag any, Payload Float](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: a.payload / b.payload}
}

// Mod returns the tagged floating-point remainder of the payloads.
func Mod[Tag any, Payload Float](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: Payload(math.Mod(float64(a.payload), float64(b.payload)))}
}

// Sqrt returns the tagged square root of the payload; negative payloads
// yield NaN per the payload's rule.
func Sqrt[Tag any, Payload Float](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: Payload(math.Sqrt(float64(v.payload)))}
}

// Round returns the tagged payload rounded to the nearest integer, halves
// away from zero.
func Round[Tag any, Payload Float](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: Payload(math.Round(float64(v.payload)))}
}

// Floor returns the tagged greatest integer value less than or equal to the
// payload.
func Floor[Tag any, Payload Float](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: Payload(math.Floor(float64(v.payload)))}
}

// Ceil returns the tagged least integer value greater than or equal to the
// payload.
func Ceil[Tag any, Payload Float](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: Payload(math.Ceil(float64(v.payload)))}
}

// Trunc returns the tagged integer part of the payload.
func Trunc[Tag any, Payload Float](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: Payload(math.Trunc(float64(v.payload)))}
}

// NextAfter returns the next representable payload value after v in the
// direction of toward, at the payload's own width.
func NextAfter[Tag any, Payload Float](v, toward Value[Tag, Payload]) Value[Tag, Payload] {
	if isFloat32[Payload]() {
		return Value[Tag, Payload]{payload: Payload(math.Nextafter32(float32(v.payload), float32(toward.payload)))}
	}

	return Value[Tag, Payload]{payload: Payload(math.Nextafter(float64(v.payload), float64(toward.payload)))}
}

// IsNaN reports whether the payload is not-a-number.
func IsNaN[Tag any, Payload Float](v Value[Tag, Payload]) bool {
	return v.payload != v.payload
}

// IsInf reports whether the payload is an infinity of either sign.
func IsInf[Tag any, Payload Float](v Value[Tag, Payload]) bool {
	return math.IsInf(float64(v.payload), 0)
}

// IsFinite reports whether the payload is neither infinite nor NaN.
func IsFinite[Tag any, Payload Float](v Value[Tag, Payload]) bool {
	return !IsNaN(v) && !IsInf(v)
}

// IsZero reports whether the payload is zero of either sign.
func IsZero[Tag any, Payload Float](v Value[Tag, Payload]) bool {
	return v.payload == 0
}

// IsNormal reports whether the payload is a normal floating-point number:
// finite, nonzero, and not subnormal.
func IsNormal[Tag any, Payload Float](v Value[Tag, Payload]) bool {
	return IsFinite(v) && v.payload != 0 && !IsSubnormal(v)
}

// IsSubnormal reports whether the payload is subnormal at its own width.
func IsSubnormal[Tag any, Payload Float](v Value[Tag, Payload]) bool {
	magnitude := float64(v.payload)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	if magnitude == 0 || IsNaN(v) || IsInf(v) {
		return false
	}

	if isFloat32[Payload]() {
		return magnitude < minNormalFloat32
	}

	return magnitude < minNormalFloat64
}

const (
	minNormalFloat32 = 0x1p-126
	minNormalFloat64 = 0x1p-1022
)

func isFloat32[Payload Float]() bool {
	return unsafe.Sizeof(Payload(0)) == 4
}
