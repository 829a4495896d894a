package handlers

import (
	"fmt"
	"net/http"

	"workasana/internal/domain"

	"github.com/gin-gonic/gin"
)

type ownerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) CreateOwner(c *gin.Context) {
	var req ownerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(c, fmt.Errorf("%w: name and email are required", domain.ErrValidation))
		return
	}

	owner := domain.Owner{Name: req.Name, Email: req.Email}
	if err := h.Owners.Create(c.Request.Context(), &owner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

func (h *Handler) ListOwners(c *gin.Context) {
	owners, err := h.Owners.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}
