package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ReportLastWeekCompleted(c *gin.Context) {
	tasks, err := h.Reports.LastWeekCompleted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) ReportPending(c *gin.Context) {
	report, err := h.Reports.Pending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) ReportClosedByTeam(c *gin.Context) {
	counts, err := h.Reports.ClosedByTeam(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) ReportClosedByOwner(c *gin.Context) {
	counts, err := h.Reports.ClosedByOwner(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
