package orgchart

import (
	"github.com/frahmantamala/org-directory/internal/person"
)

// ScopeResult is the set of record ids a viewer may see plus the ordered
// ids the forest is rooted at.
type ScopeResult struct {
	Visible map[string]struct{}
	Roots   []string
}

// Scope computes visibility for a viewer. An unknown viewer yields an
// empty scope, which is a normal result, not an error.
//
// The viewer always sees their management chain upward. Viewers in a
// supervising role (area manager or manager) additionally see their
// entire subtree of reports. Assistants see only the chain.
func Scope(ix *Index, viewerID string) ScopeResult {
	visible := make(map[string]struct{})

	viewer, ok := ix.Record(viewerID)
	if !ok {
		return ScopeResult{Visible: visible}
	}
	visible[viewer.ID] = struct{}{}

	// Walk manager references upward. The visited set stops the walk on
	// the first repeated id, so a cyclic chain of length k ends within
	// k+1 steps.
	visited := map[string]struct{}{viewer.ID: {}}
	var ancestors []string
	current := viewer
	for current.HasManager() {
		nextID := *current.ManagerID
		if _, seen := visited[nextID]; seen {
			break
		}
		mgr, ok := ix.Record(nextID)
		if !ok {
			break
		}
		visited[nextID] = struct{}{}
		ancestors = append(ancestors, nextID)
		visible[nextID] = struct{}{}
		current = mgr
	}

	if viewer.Role == person.RoleAreaManager || viewer.Role == person.RoleManager {
		// Breadth-first over the validated adjacency. Edges strictly
		// increase role rank, so this terminates even when the raw
		// snapshot was inconsistent.
		seen := map[string]struct{}{viewer.ID: {}}
		queue := []string{viewer.ID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, child := range ix.Children(id) {
				if _, dup := seen[child.ID]; dup {
					continue
				}
				seen[child.ID] = struct{}{}
				visible[child.ID] = struct{}{}
				queue = append(queue, child.ID)
			}
		}
	}

	// An area manager is always their own single root; their own
	// supervisors are never surfaced above them. Everyone else roots at
	// the top of the resolved chain, falling back to themselves.
	var roots []string
	switch {
	case viewer.Role == person.RoleAreaManager:
		roots = []string{viewer.ID}
	case len(ancestors) > 0:
		roots = []string{ancestors[len(ancestors)-1]}
	default:
		roots = []string{viewer.ID}
	}

	return ScopeResult{Visible: visible, Roots: roots}
}
