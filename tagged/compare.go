package tagged

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether two tagged values under the same tag wrap equal
// payloads, using the payload's own equality. Payload anomalies pass through
// verbatim: a NaN float payload is never equal to itself, so
// Equal(New[T](math.NaN()), New[T](math.NaN())) is false.
//
// For comparable payloads the == operator on Value works identically; Equal
// is the named form for use as a function value.
func Equal[Tag any, Payload comparable](a, b Value[Tag, Payload]) bool {
	return a.payload == b.payload
}

// Less reports whether a's payload orders strictly before b's, under the
// payload's own < relation.
func Less[Tag any, Payload Ordered](a, b Value[Tag, Payload]) bool {
	return a.payload < b.payload
}

// Compare returns -1, 0, or +1 ordering a against b by their payloads.
// NaN payloads follow cmp.Compare: NaN sorts before everything and compares
// equal to NaN.
func Compare[Tag any, Payload Ordered](a, b Value[Tag, Payload]) int {
	return cmp.Compare(a.payload, b.payload)
}

// Min returns the tagged value with the smaller payload.
func Min[Tag any, Payload Ordered](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	if b.payload < a.payload {
		return b
	}

	return a
}

// Max returns the tagged value with the larger payload.
func Max[Tag any, Payload Ordered](a, b Value[Tag, Payload]) Value[Tag, Payload] {
	if b.payload > a.payload {
		return b
	}

	return a
}

// Hash returns the hash of the wrapped payload for the given seed.
//
// The hash is computed over the payload alone, so equal tagged values always
// hash equally - and a tagged value hashes identically to its bare payload.
// Comparable payloads also work directly as map keys; Hash exists for
// hand-rolled hash tables and sharding schemes.
func Hash[Tag any, Payload comparable](seed maphash.Seed, v Value[Tag, Payload]) uint64 {
	return maphash.Comparable(seed, v.payload)
}
