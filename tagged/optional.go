package tagged

// Option is a tagged optional-like payload: a pointer that either holds a
// wrapped value or nothing. It is an alias, so every Value capability
// applies unchanged - in particular the JSON form of None is null, exactly
// as for the bare pointer payload.
type Option[Tag any, Wrapped any] = Value[Tag, *Wrapped]

// None returns the tagged "no value" instance - the nil-literal construction
// for optional-like payloads.
func None[Tag any, Wrapped any]() Option[Tag, Wrapped] {
	return Value[Tag, *Wrapped]{}
}

// Some lifts a bare wrapped value into the tagged optional holding it.
func Some[Tag any, Wrapped any](wrapped Wrapped) Option[Tag, Wrapped] {
	return Value[Tag, *Wrapped]{payload: &wrapped}
}

// Unwrap returns the plain optional form of the inner value: the wrapped
// value and true, or the zero value and false for None.
func Unwrap[Tag any, Wrapped any](v Option[Tag, Wrapped]) (Wrapped, bool) {
	if v.payload == nil {
		var zero Wrapped
		return zero, false
	}

	return *v.payload, true
}

// IsNone reports whether the tagged optional holds no value.
func IsNone[Tag any, Wrapped any](v Option[Tag, Wrapped]) bool {
	return v.payload == nil
}
