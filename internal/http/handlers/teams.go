package handlers

import (
	"fmt"
	"net/http"

	"workasana/internal/domain"

	"github.com/gin-gonic/gin"
)

type teamRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Members     []int64 `json:"members"`
}

func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Name == "" {
		respondError(c, fmt.Errorf("%w: name is required", domain.ErrValidation))
		return
	}

	team := domain.Team{Name: req.Name, Description: req.Description, Members: req.Members}
	if err := h.Teams.Create(c.Request.Context(), &team); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.Teams.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}
