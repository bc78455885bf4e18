package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Couriers *repository.CourierRepository
}

func NewAdminController(db *gorm.DB, users *repository.UserRepository, couriers *repository.CourierRepository) *AdminController {
	return &AdminController{DB: db, Users: users, Couriers: couriers}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	var users, restaurants, orders, couriers int64
	for _, q := range []struct {
		model any
		dst   *int64
	}{
		{&entity.User{}, &users},
		{&entity.Restaurant{}, &restaurants},
		{&entity.Order{}, &orders},
		{&entity.Courier{}, &couriers},
	} {
		if err := ac.DB.Model(q.model).Count(q.dst).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	resp.OK(c, gin.H{
		"users": users, "restaurants": restaurants,
		"orders": orders, "couriers": couriers,
	})
}

// GET /admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	items, total, err := ac.Users.List(queryInt(c, "page", 1), queryInt(c, "limit", 50))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// GET /admin/couriers
func (ac *AdminController) ListCouriers(c *gin.Context) {
	items, err := ac.Couriers.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type grantRoleReq struct {
	Role entity.RoleName `json:"role" binding:"required,oneof=ADMIN RESTAURANT COURIER CUSTOMER"`
}

// POST /admin/users/:id/roles
func (ac *AdminController) GrantRole(c *gin.Context) {
	var req grantRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ac.Users.GetByID(paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	role, err := ac.Users.GetRoleByName(req.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if err := ac.Users.GrantRole(ac.DB, u, role); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"granted": req.Role})
}

type createCourierReq struct {
	UserID       uint   `json:"userId" binding:"required"`
	VehiclePlate string `json:"vehiclePlate"`
	License      string `json:"license"`
}

// POST /admin/couriers - creates the courier profile and grants the role
// in one transaction.
func (ac *AdminController) CreateCourier(c *gin.Context) {
	var req createCourierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ac.Users.GetByID(req.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	role, err := ac.Users.GetRoleByName(entity.RoleCourier)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	courier := entity.Courier{
		UserID:       u.ID,
		VehiclePlate: req.VehiclePlate,
		License:      req.License,
	}
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&courier).Error; err != nil {
			return err
		}
		return ac.Users.GrantRole(tx, u, role)
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, courier)
}
