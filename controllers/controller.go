package controllers

import (
	"errors"
	"strconv"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/pkg/resp"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleServiceError maps the service error taxonomy to HTTP: business
// errors are 400, forbidden is 403, missing rows are 404, the rest is an
// opaque 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case services.IsBusinessError(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.Atoi(c.Param(name))
	return uint(id)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
