package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
	Menus   *services.MenuService
}

func NewRestaurantController(s *services.RestaurantService, menus *services.MenuService) *RestaurantController {
	return &RestaurantController{Service: s, Menus: menus}
}

// GET /restaurants?q=&page=&limit=
func (rc *RestaurantController) List(c *gin.Context) {
	out, err := rc.Service.List(c.Query("q"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	out, err := rc.Service.Detail(paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// ----- partner surface -----

// GET /partner/restaurant
func (rc *RestaurantController) Mine(c *gin.Context) {
	out, err := rc.Service.ListForOwner(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// POST /partner/restaurant
func (rc *RestaurantController) Create(c *gin.Context) {
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Service.CreateForOwner(utils.CurrentUserID(c), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /partner/restaurant/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Service.UpdateForOwner(utils.CurrentUserID(c), paramID(c, "id"), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurant/:id/dashboard
func (rc *RestaurantController) Dashboard(c *gin.Context) {
	out, err := rc.Service.Dashboard(utils.CurrentUserID(c), paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// ----- menu -----

// GET /restaurants/:id/menu
func (rc *RestaurantController) Menu(c *gin.Context) {
	items, err := rc.Menus.ListForRestaurant(paramID(c, "id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /partner/restaurant/:id/menu
func (rc *RestaurantController) CreateMenuItem(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Menus.Create(utils.CurrentUserID(c), paramID(c, "id"), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /partner/restaurant/menu/:id
func (rc *RestaurantController) UpdateMenuItem(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Menus.Update(utils.CurrentUserID(c), paramID(c, "id"), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}
