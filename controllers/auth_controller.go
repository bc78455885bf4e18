package controllers

import (
	"errors"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.Service.Register(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.Service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Service.Me(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, u)
}

func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req services.UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ac.Service.UpdateMe(utils.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, u)
}
