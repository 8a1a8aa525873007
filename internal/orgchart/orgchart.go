// Package orgchart projects the flat personnel directory into the
// role-scoped hierarchy a viewer is allowed to see. The projection is a
// pure derivation: it reads an already-fetched record snapshot, never
// mutates shared state, and is recomputed per request.
//
// Malformed source data (dangling manager references, reporting cycles,
// unrecognized roles) degrades to smaller output rather than errors.
package orgchart

import (
	"github.com/frahmantamala/org-directory/internal/person"
)

// Node wraps one directory record and its ordered reports. A record
// appears at most once per tree; a reporting cycle materializes the
// repeated record as a leaf.
type Node struct {
	Person   person.Person
	Children []*Node
}
