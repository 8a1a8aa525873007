package person

// ListParams are the filter parameters accepted by the directory query.
// Zero Limit means no limit.
type ListParams struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

// PersonResponse is the transport shape for a single directory entry.
type PersonResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
	Company   string  `json:"company,omitempty"`
	IsActive  bool    `json:"is_active"`
}

func (p *Person) ToResponse() PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		Username:  p.Username,
		Name:      p.Name,
		Role:      string(p.Role),
		ManagerID: p.ManagerID,
		Company:   p.Company,
		IsActive:  p.IsActive,
	}
}
