package orgchart

// Build composes one tree per root id, in root order. Ids that are
// unknown or outside the visible set produce no node.
func Build(ix *Index, scope ScopeResult) []*Node {
	forest := make([]*Node, 0, len(scope.Roots))
	for _, rootID := range scope.Roots {
		if node := buildNode(ix, rootID, scope.Visible, make(map[string]struct{})); node != nil {
			forest = append(forest, node)
		}
	}
	return forest
}

// buildNode recurses depth-first through the visible adjacency. The path
// set holds the ids on the current root-to-node path; an id reappearing
// on its own path becomes a terminal node instead of being expanded
// again, bounding recursion depth by the number of distinct visible ids.
func buildNode(ix *Index, id string, visible, path map[string]struct{}) *Node {
	rec, ok := ix.Record(id)
	if !ok {
		return nil
	}
	if _, ok := visible[id]; !ok {
		return nil
	}
	if _, onPath := path[id]; onPath {
		return &Node{Person: rec}
	}

	path[id] = struct{}{}
	node := &Node{Person: rec}
	for _, child := range ix.Children(id) {
		if c := buildNode(ix, child.ID, visible, path); c != nil {
			node.Children = append(node.Children, c)
		}
	}
	delete(path, id)

	return node
}

// CountNodes counts distinct record ids across the forest. Roots share
// no nodes under the current root-selection rule, but counting through a
// visited set keeps the total correct even if a future rule lets an id
// be reachable from more than one root.
func CountNodes(forest []*Node) int {
	seen := make(map[string]struct{})
	var walk func(*Node)
	walk = func(n *Node) {
		seen[n.Person.ID] = struct{}{}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range forest {
		walk(n)
	}
	return len(seen)
}
