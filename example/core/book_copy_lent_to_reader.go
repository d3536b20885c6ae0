package core

import (
	"time"
)

// BookCopyLentToReaderEventType is the event type identifier.
const BookCopyLentToReaderEventType = "BookCopyLentToReader"

// BookCopyLentToReader represents when a book copy is lent to a reader.
//
// BookID and ReaderID are tagged uuid payloads: the JSON form below is
// indistinguishable from plain uuid strings (the tag is erased on the wire),
// but inside the program the two fields can never be swapped.
type BookCopyLentToReader struct {
	EventType  string
	BookID     BookID
	ReaderID   ReaderID
	OccurredAt OccurredAtTS
}

// BuildBookCopyLentToReader creates a new BookCopyLentToReader event.
func BuildBookCopyLentToReader(bookID BookID, readerID ReaderID, occurredAt time.Time) BookCopyLentToReader {
	return BookCopyLentToReader{
		EventType:  BookCopyLentToReaderEventType,
		BookID:     bookID,
		ReaderID:   readerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyLentToReader) IsEventType() string {
	return BookCopyLentToReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyLentToReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}
