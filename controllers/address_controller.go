package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	Service *services.AddressService
}

func NewAddressController(s *services.AddressService) *AddressController {
	return &AddressController{Service: s}
}

// GET /profile/addresses
func (ac *AddressController) List(c *gin.Context) {
	items, err := ac.Service.List(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /profile/addresses
func (ac *AddressController) Create(c *gin.Context) {
	var in services.AddressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.Service.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /profile/addresses/:id
func (ac *AddressController) Update(c *gin.Context) {
	var in services.AddressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.Service.Update(utils.CurrentUserID(c), paramID(c, "id"), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /profile/addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	if err := ac.Service.Delete(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
