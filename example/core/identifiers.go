package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/tagged-values-go/tagged"
)

// Tag markers for the domain identifiers. They are uninhabited and carry no
// behavior; only their type identity matters.
type bookIDTag struct{}
type readerIDTag struct{}
type isbnTag struct{}

// BookID identifies one physical book copy.
type BookID = tagged.Value[bookIDTag, uuid.UUID]

// ReaderID identifies a registered reader.
type ReaderID = tagged.Value[readerIDTag, uuid.UUID]

// ISBN identifies the edition a book copy belongs to.
type ISBN = tagged.Value[isbnTag, string]

// BuildBookID wraps a raw uuid as a BookID.
func BuildBookID(id uuid.UUID) BookID {
	return tagged.New[bookIDTag](id)
}

// BuildReaderID wraps a raw uuid as a ReaderID.
func BuildReaderID(id uuid.UUID) ReaderID {
	return tagged.New[readerIDTag](id)
}

// BuildISBN wraps a raw ISBN string.
func BuildISBN(isbn string) ISBN {
	return tagged.New[isbnTag](isbn)
}

// BookIDFromString reconstructs a BookID from its canonical uuid string,
// reporting absence for malformed input.
func BookIDFromString(s string) (BookID, bool) {
	return tagged.ParseText[bookIDTag, uuid.UUID](s)
}

// ReaderIDFromString reconstructs a ReaderID from its canonical uuid string.
func ReaderIDFromString(s string) (ReaderID, bool) {
	return tagged.ParseText[readerIDTag, uuid.UUID](s)
}

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and
// microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
