package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type CourierController struct {
	Service *services.CourierService
}

func NewCourierController(s *services.CourierService) *CourierController {
	return &CourierController{Service: s}
}

// GET /partner/courier/dashboard
func (cc *CourierController) Dashboard(c *gin.Context) {
	out, err := cc.Service.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/courier/assignment
func (cc *CourierController) CurrentAssignment(c *gin.Context) {
	out, err := cc.Service.CurrentAssignment(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"assignment": out})
}

// GET /partner/courier/histories
func (cc *CourierController) Histories(c *gin.Context) {
	items, err := cc.Service.History(utils.CurrentUserID(c), queryInt(c, "limit", 50))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /partner/courier/orders/:id/pickup
func (cc *CourierController) Pickup(c *gin.Context) {
	if err := cc.Service.Pickup(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"pickedUp": true})
}

// PATCH /partner/courier/orders/:id/deliver
func (cc *CourierController) Deliver(c *gin.Context) {
	if err := cc.Service.Deliver(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"delivered": true})
}
