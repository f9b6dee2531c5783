package controllers

import (
	"net/http"

	"github.com/yansanity1998/ojt-hours-tracker/services"

	"github.com/gin-gonic/gin"
)

func ListNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	items, err := services.ListNotifications(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func ClearNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.ClearNotifications(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}
	c.Status(http.StatusNoContent)
}
