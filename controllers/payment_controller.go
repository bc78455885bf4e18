package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// GET /orders/:id/payment
func (pc *PaymentController) Get(c *gin.Context) {
	out, err := pc.Service.GetForUser(utils.CurrentUserID(c), paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/payment/complete (simulated gateway callback)
func (pc *PaymentController) Complete(c *gin.Context) {
	out, err := pc.Service.Complete(utils.CurrentUserID(c), paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/payment/fail (simulated decline)
func (pc *PaymentController) Fail(c *gin.Context) {
	out, err := pc.Service.Fail(utils.CurrentUserID(c), paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}
