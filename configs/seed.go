package configs

import (
	"errors"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedRoles makes sure every role of the closed set exists.
func SeedRoles(db *gorm.DB) error {
	for _, name := range entity.AllRoles() {
		var r entity.Role
		err := db.Where("name = ?", name).First(&r).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var existing entity.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		Roles:     []*entity.Role{&adminRole},
	}
	return db.Create(&admin).Error
}
