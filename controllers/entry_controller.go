package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/yansanity1998/ojt-hours-tracker/services"

	"github.com/gin-gonic/gin"
)

// entryError maps service failures to status codes: policy violations
// get a specific 409, missing rows a 404, everything else a generic 500.
func entryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionsFilled),
		errors.Is(err, services.ErrDuplicateDate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

func ListEntries(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := services.ListEntries(uid)
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func AddEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AddEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddEntry(uid, input, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrDuplicateDate) {
			entryError(c, err)
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type updateEntryInput struct {
	Field services.EntryField `json:"field" binding:"required"`
	Value string              `json:"value"`
}

func UpdateEntry(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var input updateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, ptr, err := services.UpdateEntryField(uid, id, input.Field, input.Value, time.Now())
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "pointer": ptr})
}

func DeleteEntry(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	ptr, err := services.DeleteEntry(uid, id, time.Now())
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pointer": ptr})
}

// ClockToggle is the single time-in/time-out control.
func ClockToggle(c *gin.Context) {
	uid := c.GetUint("userID")

	result, err := services.ClockToggle(uid, time.Now())
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClockStatus reports the derived session pointer; clients call it on
// load instead of trusting any cached state.
func ClockStatus(c *gin.Context) {
	uid := c.GetUint("userID")

	ptr, err := services.ResolveSession(uid, time.Now())
	if err != nil {
		entryError(c, err)
		return
	}
	c.JSON(http.StatusOK, ptr)
}
