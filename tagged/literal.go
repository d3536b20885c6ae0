package tagged

// The builders below stand in for the literal forms Go cannot promote
// implicitly. Untyped constant literals already flow through New at the call
// site (tagged.New[quantityTag](123) and friends); slices, maps, and absent
// values get an explicit builder each.

// FromElements builds a tagged slice from the listed elements, in order.
// It is the array-literal form of construction:
//
//	primes := tagged.FromElements[primesTag](2, 3, 5, 7)
func FromElements[Tag any, Element any](elements ...Element) Value[Tag, []Element] {
	return Value[Tag, []Element]{payload: elements}
}

// Pair is one key/value entry for FromPairs.
type Pair[Key comparable, Val any] struct {
	Key Key
	Val Val
}

// KV builds a single Pair.
func KV[Key comparable, Val any](key Key, val Val) Pair[Key, Val] {
	return Pair[Key, Val]{Key: key, Val: val}
}

// FromPairs builds a tagged map from the listed key/value pairs. It is the
// dictionary-literal form of construction and follows Go's own map-literal
// rule for duplicate keys: pairs are inserted in order, so the last write
// wins.
//
//	headers := tagged.FromPairs[headersTag](
//		tagged.KV("Accept", "application/json"),
//		tagged.KV("Host", "localhost"),
//	)
func FromPairs[Tag any, Key comparable, Val any](pairs ...Pair[Key, Val]) Value[Tag, map[Key]Val] {
	payload := make(map[Key]Val, len(pairs))
	for _, pair := range pairs {
		payload[pair.Key] = pair.Val
	}

	return Value[Tag, map[Key]Val]{payload: payload}
}
