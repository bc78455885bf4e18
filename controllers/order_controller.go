package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Place(uid, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id (order owner only)
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	out, err := oc.Service.DetailForUser(uid, paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, err := oc.Service.ListForUser(uid, queryInt(c, "limit", 50))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := oc.Service.CustomerCancel(uid, paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
