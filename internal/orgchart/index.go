package orgchart

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/frahmantamala/org-directory/internal/person"
)

// Index holds a validated snapshot of the directory: records by id plus
// the manager-to-reports adjacency. Records with unrecognized roles are
// excluded entirely, so they appear neither as nodes nor as edge
// endpoints. An edge is kept only when the referenced manager exists and
// the report's role rank is strictly greater than the manager's; that
// strict increase is what rules out reporting cycles in the adjacency.
type Index struct {
	records  map[string]person.Person
	children map[string][]person.Person
}

// NewIndex validates and indexes a record snapshot. Invalid records and
// edges are dropped silently; transient directory inconsistency is
// tolerated rather than treated as a hard error.
func NewIndex(records []person.Person) *Index {
	ix := &Index{
		records:  make(map[string]person.Person, len(records)),
		children: make(map[string][]person.Person),
	}

	// Roles are normalized to the canonical enumeration here, so every
	// rank and role comparison downstream sees canonical values.
	for _, rec := range records {
		role, ok := person.ParseRole(string(rec.Role))
		if !ok {
			continue
		}
		rec.Role = role
		ix.records[rec.ID] = rec
	}

	edgeSeen := make(map[string]map[string]struct{})
	for _, rec := range records {
		rec, ok := ix.records[rec.ID]
		if !ok || !rec.HasManager() {
			continue
		}
		mgr, ok := ix.records[*rec.ManagerID]
		if !ok {
			continue
		}
		if rec.Role.Rank() <= mgr.Role.Rank() {
			continue
		}
		if edgeSeen[mgr.ID] == nil {
			edgeSeen[mgr.ID] = make(map[string]struct{})
		}
		if _, dup := edgeSeen[mgr.ID][rec.ID]; dup {
			continue
		}
		edgeSeen[mgr.ID][rec.ID] = struct{}{}
		ix.children[mgr.ID] = append(ix.children[mgr.ID], rec)
	}

	// Sibling order: shallower roles first, then names under the
	// deployment locale. Stable, so equal keys keep snapshot order.
	collator := collate.New(language.Indonesian)
	for id := range ix.children {
		siblings := ix.children[id]
		sort.SliceStable(siblings, func(i, j int) bool {
			ri, rj := siblings[i].Role.Rank(), siblings[j].Role.Rank()
			if ri != rj {
				return ri < rj
			}
			return collator.CompareString(siblings[i].Name, siblings[j].Name) < 0
		})
	}

	return ix
}

// Record returns the indexed record for id.
func (ix *Index) Record(id string) (person.Person, bool) {
	rec, ok := ix.records[id]
	return rec, ok
}

// Children returns the ordered direct reports of id.
func (ix *Index) Children(id string) []person.Person {
	return ix.children[id]
}

// Len is the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}
