package utils

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRoles(c *gin.Context) entity.RoleSet {
	if v, ok := c.Get("roles"); ok {
		if s, ok := v.(entity.RoleSet); ok {
			return s
		}
	}
	return nil
}
