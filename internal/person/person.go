package person

import (
	"errors"
	"strings"
	"time"

	personDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/person"
)

// Role is the closed set of reporting-line roles. The stored strings
// follow the upstream HR system; everything else is unrecognized and
// excluded from hierarchy traversal.
type Role string

const (
	RoleAreaManager Role = "AREA_MANAGER"
	RoleManager     Role = "MANAGER"
	RoleAssistant   Role = "ASISTEN"
)

// ParseRole normalizes a stored role string into the closed enumeration.
// The second return value reports whether the value was recognized.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAreaManager:
		return RoleAreaManager, true
	case RoleManager:
		return RoleManager, true
	case RoleAssistant:
		return RoleAssistant, true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Rank is the organizational depth of the role: 0 for AreaManager, 1 for
// Manager, 2 for Assistant. A valid reporting edge always goes from a
// lower rank to a strictly higher one. Callers must check Valid first;
// unrecognized roles rank below everything so they never win a
// comparison by accident.
func (r Role) Rank() int {
	switch r {
	case RoleAreaManager:
		return 0
	case RoleManager:
		return 1
	case RoleAssistant:
		return 2
	}
	return int(^uint(0) >> 1)
}

// CanAccess reports whether the role is at least as senior as required.
func (r Role) CanAccess(required Role) bool {
	return r.Valid() && r.Rank() <= required.Rank()
}

type Person struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	ManagerID *string   `json:"manager_id,omitempty"`
	Company   string    `json:"company,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasManager reports whether the record carries a usable manager reference.
func (p *Person) HasManager() bool {
	return p.ManagerID != nil && *p.ManagerID != ""
}

var ErrNotFound = errors.New("person not found")

func FromDataModel(dm *personDatamodel.Person) *Person {
	// Recognized role strings are normalized to their canonical form;
	// unrecognized ones pass through raw so consumers can exclude them.
	role := Role(dm.Role)
	if parsed, ok := ParseRole(dm.Role); ok {
		role = parsed
	}
	p := &Person{
		ID:        dm.ID,
		Username:  dm.Username,
		Name:      dm.Name,
		Role:      role,
		ManagerID: dm.ManagerID,
		IsActive:  dm.IsActive,
		CreatedAt: dm.CreatedAt,
		UpdatedAt: dm.UpdatedAt,
	}
	if dm.Company != nil {
		p.Company = dm.Company.Name
	}
	return p
}

func ToDataModel(p *Person) *personDatamodel.Person {
	return &personDatamodel.Person{
		ID:        p.ID,
		Username:  p.Username,
		Name:      p.Name,
		Role:      string(p.Role),
		ManagerID: p.ManagerID,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
