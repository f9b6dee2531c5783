package controllers

import (
	"net/http"

	"github.com/yansanity1998/ojt-hours-tracker/services"

	"github.com/gin-gonic/gin"
)

func GetProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := services.ProjectForUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}
	c.JSON(http.StatusOK, progress)
}
