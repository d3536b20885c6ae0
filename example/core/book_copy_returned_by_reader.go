package core

import (
	"time"
)

// BookCopyReturnedByReaderEventType is the event type identifier.
const BookCopyReturnedByReaderEventType = "BookCopyReturnedByReader"

// BookCopyReturnedByReader represents when a book copy is returned by a reader.
type BookCopyReturnedByReader struct {
	EventType  string
	BookID     BookID
	ReaderID   ReaderID
	OccurredAt OccurredAtTS
}

// BuildBookCopyReturnedByReader creates a new BookCopyReturnedByReader event.
func BuildBookCopyReturnedByReader(bookID BookID, readerID ReaderID, occurredAt time.Time) BookCopyReturnedByReader {
	return BookCopyReturnedByReader{
		EventType:  BookCopyReturnedByReaderEventType,
		BookID:     bookID,
		ReaderID:   readerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyReturnedByReader) IsEventType() string {
	return BookCopyReturnedByReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturnedByReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}
