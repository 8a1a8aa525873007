package postgres

import (
	"gorm.io/gorm"

	personDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/person"
	"github.com/frahmantamala/org-directory/internal/person"
)

// PersonRepository implements person.RepositoryAPI using GORM
type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// List retrieves directory entries with their company loaded. Ordering is
// not significant here; the projection layer applies its own sibling order.
func (r *PersonRepository) List(params person.ListParams) ([]*personDatamodel.Person, error) {
	var people []*personDatamodel.Person

	query := r.db.Preload("Company")
	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Order("created_at ASC").Find(&people).Error
	return people, err
}

// GetByID retrieves a single person by id, nil when absent.
func (r *PersonRepository) GetByID(id string) (*personDatamodel.Person, error) {
	var p personDatamodel.Person
	err := r.db.Preload("Company").Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
