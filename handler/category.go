package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvtechguy/faseyha-portal/model"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List returns the fixed category list the intake forms render
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": model.Categories})
}
