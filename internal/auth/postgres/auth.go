package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/org-directory/internal/auth"
)

// AuthRepository implements auth.RepositoryAPI over the people table.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetCredentialsByUsername(username string) (*auth.Credentials, error) {
	var row struct {
		ID           string
		PasswordHash string
		IsActive     bool
	}
	err := r.db.
		Table("people").
		Select("id, password_hash, is_active").
		Where("username = ?", username).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &auth.Credentials{
		UserID:       row.ID,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}, nil
}

func (r *AuthRepository) GetUserByID(userID string) (*auth.User, error) {
	var row struct {
		ID       string
		Username string
		Name     string
		Role     string
		IsActive bool
	}
	err := r.db.
		Table("people").
		Select("id, username, name, role, is_active").
		Where("id = ?", userID).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &auth.User{
		ID:       row.ID,
		Username: row.Username,
		Name:     row.Name,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, nil
}
