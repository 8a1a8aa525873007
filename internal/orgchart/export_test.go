package orgchart

import "github.com/frahmantamala/org-directory/internal/person"

// NewRawIndex assembles an index directly from pre-built parts, skipping
// snapshot validation. Tests use it to drive the traversal guards with
// adjacency shapes validation would never admit.
func NewRawIndex(records []person.Person, children map[string][]string) *Index {
	ix := &Index{
		records:  make(map[string]person.Person, len(records)),
		children: make(map[string][]person.Person, len(children)),
	}
	for _, rec := range records {
		ix.records[rec.ID] = rec
	}
	for id, kids := range children {
		for _, kid := range kids {
			ix.children[id] = append(ix.children[id], ix.records[kid])
		}
	}
	return ix
}
