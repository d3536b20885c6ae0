package tagged

import (
	"iter"
	"maps"
	"slices"
)

// List is a tagged slice payload. It is an alias, not a distinct type:
// every Value capability applies to it unchanged.
type List[Tag any, Element any] = Value[Tag, []Element]

// Dict is a tagged map payload.
type Dict[Tag any, Key comparable, Val any] = Value[Tag, map[Key]Val]

// Values iterates the tagged slice start to finish, yielding the same
// elements in the same order as iterating the payload directly. The iterator
// is the payload's own (slices.Values), not a wrapper-specific one.
func Values[Tag any, Element any](v List[Tag, Element]) iter.Seq[Element] {
	return slices.Values(v.payload)
}

// Backward iterates the tagged slice from the last element to the first,
// yielding index/element pairs like slices.Backward.
func Backward[Tag any, Element any](v List[Tag, Element]) iter.Seq2[int, Element] {
	return slices.Backward(v.payload)
}

// Len returns the element count of the tagged slice.
func Len[Tag any, Element any](v List[Tag, Element]) int {
	return len(v.payload)
}

// IsEmpty reports whether the tagged slice has no elements.
func IsEmpty[Tag any, Element any](v List[Tag, Element]) bool {
	return len(v.payload) == 0
}

// At returns the element at the given index. Out-of-range indexes panic
// exactly as indexing the payload would - a precondition violation, not a
// recoverable error.
func At[Tag any, Element any](v List[Tag, Element], index int) Element {
	return v.payload[index]
}

// First returns the element at the start position.
func First[Tag any, Element any](v List[Tag, Element]) Element {
	return v.payload[0]
}

// Last returns the element at the position immediately before the end.
func Last[Tag any, Element any](v List[Tag, Element]) Element {
	return v.payload[len(v.payload)-1]
}

// SetAt assigns the element at the given index in place, delegating to the
// payload's indexed assignment (and sharing its aliasing semantics).
func SetAt[Tag any, Element any](v *List[Tag, Element], index int, element Element) {
	v.payload[index] = element
}

// AppendTo returns the tagged slice with the elements appended, following
// Go's own append semantics (the result may share the payload's backing
// array when capacity allows).
func AppendTo[Tag any, Element any](v List[Tag, Element], elements ...Element) List[Tag, Element] {
	return Value[Tag, []Element]{payload: append(v.payload, elements...)}
}

// Concat returns a tagged slice holding the elements of both tagged slices
// in order, in a freshly allocated payload (slices.Concat), so neither
// operand's backing array is shared with the result.
func Concat[Tag any, Element any](a, b List[Tag, Element]) List[Tag, Element] {
	return Value[Tag, []Element]{payload: slices.Concat(a.payload, b.payload)}
}

// ReplaceRange replaces the payload elements in [from, to) with the given
// replacement elements in place, delegating to slices.Replace: O(affected
// length), with the payload's own bounds-checking panics.
func ReplaceRange[Tag any, Element any](v *List[Tag, Element], from, to int, replacement ...Element) {
	v.payload = slices.Replace(v.payload, from, to, replacement...)
}

// EmptyList is the range-replaceable default construction: a tagged value
// wrapping the payload type's own empty slice.
func EmptyList[Tag any, Element any]() List[Tag, Element] {
	return Value[Tag, []Element]{payload: []Element{}}
}

// Get returns the value for the key in a tagged map, with the payload's own
// two-value lookup semantics.
func Get[Tag any, Key comparable, Val any](v Dict[Tag, Key, Val], key Key) (Val, bool) {
	val, ok := v.payload[key]
	return val, ok
}

// Put assigns the value for the key in the tagged map in place. A nil map
// payload panics exactly as assigning into a nil map does.
func Put[Tag any, Key comparable, Val any](v *Dict[Tag, Key, Val], key Key, val Val) {
	v.payload[key] = val
}

// DeleteKey removes the key from the tagged map, a no-op for absent keys.
func DeleteKey[Tag any, Key comparable, Val any](v *Dict[Tag, Key, Val], key Key) {
	delete(v.payload, key)
}

// DictLen returns the entry count of the tagged map.
func DictLen[Tag any, Key comparable, Val any](v Dict[Tag, Key, Val]) int {
	return len(v.payload)
}

// Pairs iterates the tagged map's entries via the payload's own iterator
// (maps.All), in the payload's own (unspecified) order.
func Pairs[Tag any, Key comparable, Val any](v Dict[Tag, Key, Val]) iter.Seq2[Key, Val] {
	return maps.All(v.payload)
}
