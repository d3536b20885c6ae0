package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/tagged-values-go/example/core"
)

// ErrUnmarshalingEventFailed is returned when an event payload can not be
// unmarshaled from JSON.
var ErrUnmarshalingEventFailed = errors.New("unmarshalling event from json failed")

// ErrUnknownEventType is returned for event type identifiers this mapper
// does not know.
var ErrUnknownEventType = errors.New("unknown event type")

// PayloadToJSON marshals a domain event to its wire JSON form.
func PayloadToJSON(event core.DomainEvent) ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(event)
}

// DomainEventFromJSON maps a wire payload back to its domain event, keyed by
// the event type identifier.
func DomainEventFromJSON(eventType string, payload []byte) (core.DomainEvent, error) {
	switch eventType {
	case core.BookCopyLentToReaderEventType:
		event := new(core.BookCopyLentToReader)
		if err := jsoniter.ConfigFastest.Unmarshal(payload, event); err != nil {
			return nil, errors.Join(ErrUnmarshalingEventFailed, err)
		}

		return *event, nil

	case core.BookCopyReturnedByReaderEventType:
		event := new(core.BookCopyReturnedByReader)
		if err := jsoniter.ConfigFastest.Unmarshal(payload, event); err != nil {
			return nil, errors.Join(ErrUnmarshalingEventFailed, err)
		}

		return *event, nil

	default:
		return nil, ErrUnknownEventType
	}
}
