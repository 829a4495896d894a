package handlers

import (
	"fmt"
	"net/http"

	"workasana/internal/domain"

	"github.com/gin-gonic/gin"
)

type tagRequest struct {
	Name string `json:"name"`
}

func (h *Handler) CreateTag(c *gin.Context) {
	var req tagRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Name == "" {
		respondError(c, fmt.Errorf("%w: name is required", domain.ErrValidation))
		return
	}

	tag := domain.ProjectTag{Name: req.Name}
	if err := h.Tags.Create(c.Request.Context(), &tag); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.Tags.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
