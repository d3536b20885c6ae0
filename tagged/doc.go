// Package tagged provides a zero-cost generic wrapper that pairs a payload
// value with a compile-time-only tag marker, so that two values sharing the
// same underlying representation (e.g. two uuid.UUID identifiers) become
// distinct, non-interchangeable types to the compiler.
//
// A tagged value stores nothing but its payload; the tag marker is a phantom
// type parameter that never occupies memory. Two tagged types are identical
// if and only if both their tag marker and their payload type match exactly,
// so a BookID can never be passed where a ReaderID is expected:
//
//	type bookIDTag struct{}
//	type readerIDTag struct{}
//
//	type BookID = tagged.Value[bookIDTag, uuid.UUID]
//	type ReaderID = tagged.Value[readerIDTag, uuid.UUID]
//
//	bookID := tagged.New[bookIDTag](uuid.New())
//	lendBook(bookID, readerID) // mixing the two up is a compile error
//
// Capabilities of the payload are selectively re-exposed on the tagged type:
//   - comparable payloads: ==, map-key usage, Equal, Hash
//   - ordered payloads: Less, Compare, Min, Max
//   - all payloads: String, JSON/YAML/text/SQL codec forwarding (the tag is
//     erased on the wire - the encoded form is the payload's own)
//   - numeric payloads: Add, Sub, Mul and friends, wrapping and checked
//     variants, float classification, random generation in a range
//   - slice/map payloads: iteration, indexed access, range replacement
//   - pointer payloads: None, Some, Unwrap
//
// Capability gating is structural: whether a function is available depends
// only on the payload type's constraint, never on the tag marker.
//
// The single escape hatch is Coerce, which relabels a tagged value under a
// different tag marker without touching the payload. It is unchecked and
// trusted by design; every other operation preserves the tag.
package tagged
