package tagged

import "cmp"

// The constraint interfaces below gate the numeric and ordering capabilities
// on the structure of the payload type. The tag marker never participates.

// Signed matches the payload types that are signed fixed-width integers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches the payload types that are unsigned fixed-width integers.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches any fixed-width integer payload type.
type Integer interface {
	Signed | Unsigned
}

// Float matches the floating-point payload types.
type Float interface {
	~float32 | ~float64
}

// Number matches any payload type with +, -, and * defined.
type Number interface {
	Integer | Float
}

// SignedNumber matches the payload types with a unary negation.
type SignedNumber interface {
	Signed | Float
}

// Ordered matches the payload types with a defined < relation, including
// strings. Float payloads keep their native semantics: NaN compares false
// against everything under <.
type Ordered interface {
	cmp.Ordered
}
