// Package shell maps the example domain events to and from their wire JSON.
//
// Because the domain identifiers are tagged values whose serialized form is
// the bare payload's, the JSON here looks exactly like it did when the
// identifiers were plain strings - the tags exist only inside the program.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'application' or 'adapter' layer.
package shell
