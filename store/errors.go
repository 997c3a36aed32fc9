package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrIDCollision signals that a freshly assigned identifier already exists
// in the collection. Identifiers are monotonic or time-derived, so this is
// an invariant violation rather than an expected failure; the mutation is
// rejected and no state changes.
var ErrIDCollision = errors.New("identifier collision")

// ValidationError reports which fields of a draft or update failed their
// checks. The operation did not mutate any state; the field reasons are
// meant for re-prompting the operator.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError reports an update against an identifier that is not in the
// collection. The operation was a no-op.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
