package repository

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}

// GetForUser scopes by owner so other users' address ids look like
// they don't exist.
func (r *AddressRepository) GetForUser(tx *gorm.DB, userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := tx.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(tx *gorm.DB, a *entity.Address) error {
	return tx.Create(a).Error
}

func (r *AddressRepository) Save(tx *gorm.DB, a *entity.Address) error {
	return tx.Save(a).Error
}

func (r *AddressRepository) Delete(tx *gorm.DB, userID, addressID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", addressID, userID).Delete(&entity.Address{})
	return res.RowsAffected, res.Error
}

// ClearDefault unsets the current default before a new one is set.
func (r *AddressRepository) ClearDefault(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
