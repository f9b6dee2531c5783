package controllers

import (
	"errors"
	"net/http"

	"github.com/yansanity1998/ojt-hours-tracker/services"

	"github.com/gin-gonic/gin"
)

func noteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateNoteDate),
		errors.Is(err, services.ErrTooManyImages):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrImageRejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

func ListNotes(c *gin.Context) {
	uid := c.GetUint("userID")

	notes, err := services.ListNotes(uid)
	if err != nil {
		noteError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

type addNoteInput struct {
	Date    string   `json:"date" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Images  []string `json:"images"` // base64 data URIs, at most three
}

func AddNote(c *gin.Context) {
	uid := c.GetUint("userID")

	var input addNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := services.AddNote(uid, input.Date, input.Content, input.Images)
	if err != nil {
		noteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func UpdateNote(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var input services.UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := services.UpdateNote(uid, id, input)
	if err != nil {
		noteError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	if err := services.DeleteNote(uid, id); err != nil {
		noteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
