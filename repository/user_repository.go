package repository

import (
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Roles").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Roles").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) GetRoleByName(name entity.RoleName) (*entity.Role, error) {
	var role entity.Role
	if err := r.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// GrantRole is a no-op when the user already holds the role.
func (r *UserRepository) GrantRole(tx *gorm.DB, u *entity.User, role *entity.Role) error {
	return tx.Model(u).Association("Roles").Append(role)
}

// GET /admin/users
type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *UserRepository) List(page, limit int) ([]UserSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := r.DB.Model(&entity.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []UserSummary
	err := r.DB.Model(&entity.User{}).
		Select("id, email, first_name, last_name, created_at").
		Order("id ASC").Limit(limit).Offset((page - 1) * limit).
		Scan(&out).Error
	return out, total, err
}
