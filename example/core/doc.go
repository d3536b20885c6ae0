// Package core contains domain events for the example:
// Book circulation in a public library.
//
// The identifiers here are tagged values: BookID and ReaderID both wrap a
// uuid.UUID, yet they are distinct types, so a handler can never receive
// them in the wrong order. Compare the alias-based alternative
// (type BookIDString = string) where every identifier is silently
// interchangeable with every other.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'domain' layer.
package core
