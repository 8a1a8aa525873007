package person

import "time"

type Person struct {
	ID           string    `gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	Name         string    `gorm:"column:name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;type:varchar(50);not null"`
	ManagerID    *string   `gorm:"column:manager_id;type:uuid"`
	CompanyID    *string   `gorm:"column:company_id;type:uuid"`
	Company      *Company  `gorm:"foreignKey:CompanyID;references:ID"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

func (Person) TableName() string {
	return "people"
}

type Company struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	Code      string    `gorm:"column:code;uniqueIndex;not null"`
	Name      string    `gorm:"column:name;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}
