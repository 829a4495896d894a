package handlers

import (
	"fmt"
	"net/http"

	"workasana/internal/domain"

	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Name == "" {
		respondError(c, fmt.Errorf("%w: name is required", domain.ErrValidation))
		return
	}

	project := domain.Project{Name: req.Name, Description: req.Description}
	if err := h.Projects.Create(c.Request.Context(), &project); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.Projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
