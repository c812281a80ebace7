package toon

import (
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrMalformedDocument is returned when non-empty input contains no block at all.
	ErrMalformedDocument = errors.NewKind("malformed document: %s")

	// ErrMalformedHeader is returned when a block header does not match the grammar.
	ErrMalformedHeader = errors.NewKind("line %d: malformed block header: %s")

	// ErrInvalidRelation is returned under the strict policy when a relation
	// descriptor cannot be parsed.
	ErrInvalidRelation = errors.NewKind("line %d: block %q has invalid relation %q")

	// ErrUnresolvedRelation is returned under the strict policy when no root
	// record has the referenced id.
	ErrUnresolvedRelation = errors.NewKind("line %d: block %q references unknown parent id %q")

	// ErrInvalidName is returned when a block or root name cannot be written.
	ErrInvalidName = errors.NewKind("invalid block name %q: must be non-empty [A-Za-z0-9_]")

	// ErrInvalidForeignKey is returned when a RelationNamer yields a key
	// that cannot be written in a relation.
	ErrInvalidForeignKey = errors.NewKind("invalid foreign key %q: must be non-empty without ':', '(', ')' or line breaks")

	// ErrInvalidParentID is returned when a root id cannot be written in a
	// relation descriptor.
	ErrInvalidParentID = errors.NewKind("record %d: id %q cannot be written in a relation: must be non-empty without ')' or line breaks")

	// ErrNotRecord is returned when an element of a collection is not a record.
	ErrNotRecord = errors.NewKind("element %d is %s, expected a record")

	// ErrNotArray is returned when JSON input is not an array of records.
	ErrNotArray = errors.NewKind("input must be a JSON array, got %s")
)
