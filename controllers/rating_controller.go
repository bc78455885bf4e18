package controllers

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Service *services.RatingService
}

func NewRatingController(s *services.RatingService) *RatingController {
	return &RatingController{Service: s}
}

// GET /restaurants/:id/ratings
func (rc *RatingController) ListForRestaurant(c *gin.Context) {
	out, err := rc.Service.ListForRestaurant(paramID(c, "id"), queryInt(c, "limit", 50))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /ratings
func (rc *RatingController) Create(c *gin.Context) {
	var in services.RatingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Service.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/ratings
func (rc *RatingController) ListMine(c *gin.Context) {
	items, err := rc.Service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /ratings/:id
func (rc *RatingController) Update(c *gin.Context) {
	var in services.RatingUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Service.Update(utils.CurrentUserID(c), paramID(c, "id"), &in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /ratings/:id
func (rc *RatingController) Delete(c *gin.Context) {
	if err := rc.Service.Delete(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
