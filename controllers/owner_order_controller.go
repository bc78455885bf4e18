package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

// Restaurant-owner side of the order surface.
type OwnerOrderController struct {
	Service *services.OrderService
}

func NewOwnerOrderController(s *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Service: s}
}

// GET /partner/restaurant/:id/orders?status=&page=&limit=
func (oc *OwnerOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID := paramID(c, "id")

	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		st := entity.OrderStatus(v)
		status = &st
	}

	out, err := oc.Service.ListForRestaurant(uid, restID, status,
		queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /partner/restaurant/orders/:id/accept
func (oc *OwnerOrderController) Accept(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := oc.Service.OwnerAccept(uid, paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderPreparing})
}

// PATCH /partner/restaurant/orders/:id/ready
func (oc *OwnerOrderController) Ready(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := oc.Service.OwnerReady(uid, paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderReady})
}
