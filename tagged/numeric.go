package tagged

import (
	"math"
	"math/rand/v2"
	"unsafe"
)

// The numeric capabilities are proxy operations: Go has no operator
// overloading, so the named functions here are the single definition of each
// operation's semantics, and the wrapping variants route through them.
// Arithmetic applies the payload's own operator and wraps the result; for
// fixed-width integer payloads Go's native rule is wraparound on overflow,
// never a trap. The *Checked variants report overflow as absence instead.

// Zero returns the payload type's zero, tagged.
func Zero[Tag any, Payload Number]() Value[Tag, Payload] {
	return Value[Tag, Payload]{}
}

// Add returns the tagged sum of the payloads.
func Add[Tag any, Payload Number](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: a.payload + b.payload}
}

// Sub returns the tagged difference of the payloads.
func Sub[Tag any, Payload Number](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: a.payload - b.payload}
}

// Mul returns the tagged product of the payloads.
func Mul[Tag any, Payload Number](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: a.payload * b.payload}
}

// Neg returns the tagged unary negation of the payload. Negating the minimum
// value of a signed integer payload wraps, per the payload's native rule.
func Neg[Tag any, Payload SignedNumber](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: -v.payload}
}

// AddWrapping is the explicitly-wrapping variant of Add for fixed-width
// integer payloads: the maximum value plus one truncates to the minimum
// representable value for the payload's width.
func AddWrapping[Tag any, Payload Integer](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Add(a, b)
}

// SubWrapping is the explicitly-wrapping variant of Sub.
func SubWrapping[Tag any, Payload Integer](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Sub(a, b)
}

// MulWrapping is the explicitly-wrapping variant of Mul.
func MulWrapping[Tag any, Payload Integer](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	return Mul(a, b)
}

// AddChecked returns the tagged sum, or absence if the sum is not
// representable in the payload's width.
func AddChecked[Tag any, Payload Integer](a, b Value[Tag, Payload]) (Value[Tag, Payload], bool) {
	sum := a.payload + b.payload

	if isSignedPayload[Payload]() {
		if (b.payload > 0 && sum < a.payload) || (b.payload < 0 && sum > a.payload) {
			return Value[Tag, Payload]{}, false
		}
	} else if sum < a.payload {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: sum}, true
}

// SubChecked returns the tagged difference, or absence on overflow.
func SubChecked[Tag any, Payload Integer](a, b Value[Tag, Payload]) (Value[Tag, Payload], bool) {
	diff := a.payload - b.payload

	if isSignedPayload[Payload]() {
		if (b.payload > 0 && diff > a.payload) || (b.payload < 0 && diff < a.payload) {
			return Value[Tag, Payload]{}, false
		}
	} else if b.payload > a.payload {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: diff}, true
}

// MulChecked returns the tagged product, or absence on overflow.
func MulChecked[Tag any, Payload Integer](a, b Value[Tag, Payload]) (Value[Tag, Payload], bool) {
	if a.payload == 0 || b.payload == 0 {
		return Value[Tag, Payload]{}, true
	}

	if isSignedPayload[Payload]() {
		minusOne := Payload(0) - 1
		if (a.payload == minPayload[Payload]() && b.payload == minusOne) ||
			(b.payload == minPayload[Payload]() && a.payload == minusOne) {
			return Value[Tag, Payload]{}, false
		}
	}

	product := a.payload * b.payload
	if product/b.payload != a.payload {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: product}, true
}

// Abs returns the tagged absolute value of a signed or floating-point
// payload. The minimum value of a signed integer payload wraps onto itself;
// a NaN payload stays NaN.
func Abs[Tag any, Payload SignedNumber](v Value[Tag, Payload]) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: magnitudeOf(v.payload)}
}

// Magnitude returns the payload's magnitude as the bare payload type, not
// re-wrapped: a magnitude is a different semantic dimension than the tagged
// quantity itself.
func Magnitude[Tag any, Payload SignedNumber](v Value[Tag, Payload]) Payload {
	return magnitudeOf(v.payload)
}

// Distance returns the stride from one tagged value to another, in the
// payload's own arithmetic (so it wraps exactly where the payload would).
func Distance[Tag any, Payload Number](from, to Value[Tag, Payload]) Payload {
	return to.payload - from.payload
}

// AdvancedBy returns the tagged value advanced by the given stride.
func AdvancedBy[Tag any, Payload Number](v Value[Tag, Payload], stride Payload) Value[Tag, Payload] {
	return Value[Tag, Payload]{payload: v.payload + stride}
}

// FromIntExact converts an integer into a tagged numeric payload, reporting
// absence when the value is not exactly representable - out of range for an
// integer payload, or rounded by a floating-point payload's mantissa.
func FromIntExact[Tag any, Payload Number](n int64) (Value[Tag, Payload], bool) {
	payload := Payload(n)

	if isFloatKind[Payload]() {
		// The conversion rounded to the payload's mantissa; it is exact iff
		// converting back recovers n. The boundary guard keeps the back
		// conversion inside int64 range (2^63 itself is representable and
		// must be rejected, since MaxInt64 is 2^63-1).
		f := float64(payload)
		boundary := float64(uint64(1) << 63)
		if f >= boundary || f < -boundary || int64(f) != n {
			return Value[Tag, Payload]{}, false
		}

		return Value[Tag, Payload]{payload: payload}, true
	}

	if unsignedKind := Payload(0)-1 > Payload(0); unsignedKind {
		if n < 0 || uint64(payload) != uint64(n) {
			return Value[Tag, Payload]{}, false
		}
	} else if int64(payload) != n {
		return Value[Tag, Payload]{}, false
	}

	return Value[Tag, Payload]{payload: payload}, true
}

// FromFloatExact converts a float into a tagged numeric payload, reporting
// absence when the value is not exactly representable - rounded by a
// narrower floating-point payload, or fractional or out of range for an
// integer payload. NaN is never exact (it compares unequal to itself).
func FromFloatExact[Tag any, Payload Number](f float64) (Value[Tag, Payload], bool) {
	if isFloatKind[Payload]() {
		payload := Payload(f)
		if float64(payload) != f {
			return Value[Tag, Payload]{}, false
		}

		return Value[Tag, Payload]{payload: payload}, true
	}

	if f != math.Trunc(f) {
		return Value[Tag, Payload]{}, false
	}

	// The conversion range must be guarded before converting: Go leaves an
	// out-of-range float-to-integer conversion implementation-defined. The
	// boundary itself is exact in float64 and out of range for the payload.
	bits := int(unsafe.Sizeof(Payload(0)) * 8)
	if isSignedPayload[Payload]() {
		boundary := math.Ldexp(1, bits-1)
		if f >= boundary || f < -boundary {
			return Value[Tag, Payload]{}, false
		}
	} else {
		boundary := math.Ldexp(1, bits)
		if f >= boundary || f < 0 {
			return Value[Tag, Payload]{}, false
		}
	}

	return Value[Tag, Payload]{payload: Payload(f)}, true
}

// RandomIn returns a uniformly distributed tagged value in the half-open
// range [lo, hi), delegating to the random source on the unwrapped bounds.
// Inverted bounds and the empty range panic, exactly as rand.Uint64N does
// on a zero bound.
func RandomIn[Tag any, Payload Integer](rng *rand.Rand, lo, hi Value[Tag, Payload]) Value[Tag, Payload] {
	if lo.payload > hi.payload {
		panic("invalid bounds to RandomIn")
	}

	span := spanOf(lo.payload, hi.payload)

	return Value[Tag, Payload]{payload: lo.payload + Payload(rng.Uint64N(span))}
}

// RandomInClosed returns a uniformly distributed tagged value in the closed
// range [lo, hi]. Inverted bounds panic.
func RandomInClosed[Tag any, Payload Integer](rng *rand.Rand, lo, hi Value[Tag, Payload]) Value[Tag, Payload] {
	if lo.payload > hi.payload {
		panic("invalid bounds to RandomInClosed")
	}

	if lo.payload == hi.payload {
		return lo
	}

	span := spanOf(lo.payload, hi.payload)
	if span == payloadMask[Payload]() {
		// Full width: every representable payload is in range.
		return Value[Tag, Payload]{payload: Payload(rng.Uint64())}
	}

	return Value[Tag, Payload]{payload: lo.payload + Payload(rng.Uint64N(span+1))}
}

func magnitudeOf[Payload SignedNumber](p Payload) Payload {
	if p < 0 {
		return -p
	}

	return p
}

// spanOf computes hi-lo as an unsigned width-masked count, so signed bounds
// spanning zero produce the correct element count.
func spanOf[Payload Integer](lo, hi Payload) uint64 {
	return uint64(hi-lo) & payloadMask[Payload]()
}

func payloadMask[Payload Integer]() uint64 {
	bits := uint(unsafe.Sizeof(Payload(0)) * 8)
	if bits == 64 {
		return ^uint64(0)
	}

	return (uint64(1) << bits) - 1
}

func minPayload[Payload Integer]() Payload {
	if !isSignedPayload[Payload]() {
		return Payload(0)
	}

	bits := uint(unsafe.Sizeof(Payload(0)) * 8)

	return Payload(1) << (bits - 1)
}

// isFloatKind reports whether the numeric payload type is floating-point:
// only a float keeps the fractional half after this round trip.
func isFloatKind[Payload Number]() bool {
	return Payload(1)/Payload(2) != Payload(0)
}
