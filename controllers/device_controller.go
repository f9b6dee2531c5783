package controllers

import (
	"net/http"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"
	"github.com/yansanity1998/ojt-hours-tracker/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	PS *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{PS: ps}
}

type registerDeviceReq struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	uid := c.GetUint("userID")

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	dev, err := dc.PS.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": dev.ID, "platform": dev.Platform})
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

func (dc *DeviceController) TogglePush(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "push preference updated",
		"enabled": req.Enabled,
	})
}
