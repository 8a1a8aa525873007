package orgchart

import "github.com/frahmantamala/org-directory/internal/person"

// NodeResponse is the recursive transport shape for one chart node.
type NodeResponse struct {
	Person   person.PersonResponse `json:"person"`
	Children []NodeResponse        `json:"children"`
}

// ChartResponse is the full projection result: the distinct visible-node
// count and the ordered forest.
type ChartResponse struct {
	TotalVisible int            `json:"total_visible"`
	Roots        []NodeResponse `json:"roots"`
}

func toNodeResponse(n *Node) NodeResponse {
	resp := NodeResponse{
		Person:   n.Person.ToResponse(),
		Children: make([]NodeResponse, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		resp.Children = append(resp.Children, toNodeResponse(c))
	}
	return resp
}

func toChartResponse(forest []*Node) *ChartResponse {
	resp := &ChartResponse{
		TotalVisible: CountNodes(forest),
		Roots:        make([]NodeResponse, 0, len(forest)),
	}
	for _, n := range forest {
		resp.Roots = append(resp.Roots, toNodeResponse(n))
	}
	return resp
}
